// Package codes translates MT4 Manager API return codes (RET_*) into
// human-readable messages.
//
// Resolution is total: every int resolves to a non-empty message, unknown and
// reserved codes falling back to a generic "other server problem" text. The
// tables are built once at package initialization and never mutated, so every
// function here is safe for concurrent use.
//
// Usage:
//
//	msg := codes.Message(ret)                       // zh-CN
//	en := codes.NewResolver(codes.LocaleEN)
//	log.Warn(en.Resolve(ret))
//
//	if err := codes.AsError(ret); err != nil {
//	    return err // *codes.Error, also a gRPC status
//	}
package codes
