package radix

import (
	"fmt"

	"github.com/arloliu/cfgcode/errs"
	"github.com/arloliu/cfgcode/format"
	"github.com/arloliu/cfgcode/internal/options"
	"go.uber.org/zap"
)

// Option configures an Encoder.
type Option = options.Option[*Encoder]

// WithCodeWidth bounds the number of configurations.
//
// format.CodeWidth32 keeps codes and 1-based indexes within math.MaxInt32, which is
// what 32-bit integer consumers expect. format.CodeWidth64 is the default.
func WithCodeWidth(width format.CodeWidth) Option {
	return options.New(func(e *Encoder) error {
		switch width {
		case format.CodeWidth32, format.CodeWidth64:
			e.width = width
			return nil
		default:
			return fmt.Errorf("%w: %d", errs.ErrInvalidCodeWidth, width)
		}
	})
}

// WithLogger sets the logger used for debug output. A nil logger disables logging.
func WithLogger(logger *zap.Logger) Option {
	return options.NoError(func(e *Encoder) {
		if logger == nil {
			logger = zap.NewNop()
		}
		e.logger = logger
	})
}
