// Package textnorm normaliza texto libre antes de persistirlo: recorta espacios
// y lleva a NFC, así "Café" escrito con o sin acento combinado agrupa igual en
// las estadísticas.
package textnorm

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

func Clean(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// Optional devuelve nil para cadenas vacías (se guardan como NULL).
func Optional(s string) *string {
	s = Clean(s)
	if s == "" {
		return nil
	}
	return &s
}
