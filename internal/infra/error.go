package infra

import (
	"errors"
	"log/slog"

	"payconnect/internal/pkg/errs"
)

type GatewayErrorKind string

type GatewayError struct {
	Kind GatewayErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e GatewayError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e GatewayError) Unwrap() error {
	return e.err
}

func WrapGatewayErr(kind GatewayErrorKind, msg string, err error) error {
	slog.Error("Gateway error: "+msg, slog.String("kind", string(kind)))

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return GatewayError{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind GatewayErrorKind) bool {
	var e GatewayError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// External-collaborator error kinds
const (
	KindUpstreamFailure GatewayErrorKind = "UPSTREAM_FAILURE"
	KindUpstreamTimeout GatewayErrorKind = "UPSTREAM_TIMEOUT"
	KindBadResponse     GatewayErrorKind = "BAD_RESPONSE"
	KindMisconfigured   GatewayErrorKind = "MISCONFIGURED"
)
