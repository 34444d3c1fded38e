package stream

import (
	"github.com/tmaklin/ahda-sub000/internal/options"
	"github.com/tmaklin/ahda-sub000/section"
)

// config holds the encoder's configurable state, built from ComputeBlockSize
// and then mutated by any Option passed to NewEncoder/NewBitIndexEncoder.
type config struct {
	blockSize uint32
	format    section.Format
}

// Option configures a streaming encoder.
type Option = options.Option[*config]

func newConfig(nTargets uint32) (*config, error) {
	blockSize, err := ComputeBlockSize(nTargets)
	if err != nil {
		return nil, err
	}

	return &config{blockSize: blockSize, format: section.FormatUnknown}, nil
}

// WithBlockSize overrides the computed block size. n must satisfy
// 2 <= n <= 65536.
func WithBlockSize(n uint32) Option {
	return options.New(func(c *config) error {
		if err := ValidateBlockSize(n); err != nil {
			return err
		}
		c.blockSize = n

		return nil
	})
}

// WithFormat records which textual dialect produced the records being
// encoded, stored in FileHeader.Format for informational purposes.
func WithFormat(f section.Format) Option {
	return options.NoError(func(c *config) {
		c.format = f
	})
}
