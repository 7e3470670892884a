package logger

import "context"

type ctxKey struct{}

var nop = Discard()

// IntoContext guarda un logger con campos del request (request_id, etc).
func IntoContext(ctx context.Context, l Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext nunca devuelve nil; sin logger en el contexto descarta.
func FromContext(ctx context.Context) Logger {
	if l, ok := ctx.Value(ctxKey{}).(Logger); ok && l != nil {
		return l
	}
	return nop
}
