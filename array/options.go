package array

import (
	"fmt"

	"github.com/arloliu/varbin/buffer"
	"github.com/arloliu/varbin/errs"
	"github.com/arloliu/varbin/format"
	"github.com/arloliu/varbin/internal/options"
)

// MutableConfig holds construction settings of a MutableBinaryValues.
type MutableConfig struct {
	dataType       format.DataType
	hasDataType    bool
	strings        bool
	valuesCapacity int
	growth         buffer.GrowthPolicy
}

// MutableOption represents a functional option for configuring a MutableBinaryValues.
// This is a type alias for the generic Option interface specialized for MutableConfig.
type MutableOption = options.Option[*MutableConfig]

func newMutableConfig(opts ...MutableOption) (*MutableConfig, error) {
	cfg := &MutableConfig{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithDataType sets the data type of the container.
//
// The type must be binary-like and match the offset width of the container;
// the width is checked when the container is created. The default is the
// raw binary type of the offset width (Binary or LargeBinary).
func WithDataType(dt format.DataType) MutableOption {
	return options.New(func(c *MutableConfig) error {
		if !dt.IsBinaryLike() {
			return fmt.Errorf("%w: %s is not a binary or string type", errs.ErrTypeMismatch, dt)
		}
		c.dataType = dt
		c.hasDataType = true

		return nil
	})
}

// WithStrings selects the UTF-8 string type of the container's offset width.
// It is ignored when WithDataType is also given.
func WithStrings() MutableOption {
	return options.NoError(func(c *MutableConfig) {
		c.strings = true
	})
}

// WithValuesCapacity reserves room for the given number of value bytes up front.
//
// By default the values buffer starts without capacity and grows with the
// byte volume pushed, independent of the number of values.
func WithValuesCapacity(bytes int) MutableOption {
	return options.New(func(c *MutableConfig) error {
		if bytes < 0 {
			return fmt.Errorf("invalid values capacity: %d", bytes)
		}
		c.valuesCapacity = bytes

		return nil
	})
}

// WithGrowthPolicy sets the growth policy of the values buffer.
// The default is buffer.DefaultGrowth.
func WithGrowthPolicy(policy buffer.GrowthPolicy) MutableOption {
	return options.NoError(func(c *MutableConfig) {
		c.growth = policy
	})
}
