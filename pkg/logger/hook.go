package logger

import (
	log "github.com/sirupsen/logrus"

	"github.com/Goden-Gun/mt4-retcode/pkg/codes"
)

// RetcodeHook fills ret_symbol and ret_msg for entries that only carry ret_code,
// so callers can log WithField("ret_code", ret) and still get readable text.
type RetcodeHook struct {
	resolver *codes.Resolver
}

// NewRetcodeHook returns a hook resolving with r (nil means default locale).
func NewRetcodeHook(r *codes.Resolver) *RetcodeHook {
	if r == nil {
		r = codes.Default()
	}
	return &RetcodeHook{resolver: r}
}

func (h *RetcodeHook) Levels() []log.Level {
	return log.AllLevels
}

func (h *RetcodeHook) Fire(entry *log.Entry) error {
	raw, ok := entry.Data[FieldRetCode]
	if !ok {
		return nil
	}
	var code int
	switch v := raw.(type) {
	case int:
		code = v
	case int32:
		code = int(v)
	case int64:
		code = int(v)
	case codes.Code:
		code = int(v)
		entry.Data[FieldRetCode] = code
	default:
		return nil
	}
	if _, ok := entry.Data[FieldRetSymbol]; !ok {
		entry.Data[FieldRetSymbol] = codes.Code(code).String()
	}
	if _, ok := entry.Data[FieldRetMsg]; !ok {
		entry.Data[FieldRetMsg] = h.resolver.Resolve(code)
	}
	return nil
}
