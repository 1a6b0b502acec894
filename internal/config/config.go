package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/chess"
	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
)

const (
	OutputText = "text"
	OutputJson = "json"
)

type Config struct {
	Log logx.LogConf

	BoardSize   int    `json:",default=5,range=[2:256]"`
	Output      string `json:",default=text,options=[text,json]"`
	Color       bool   `json:",default=true"`
	AutoRestart bool   `json:",default=true"`
	// PushInterval is how often buffered json messages are flushed to the output.
	PushInterval time.Duration `json:",default=200ms"`

	Layout struct {
		DotDistance float64 `json:",default=75"`
		DotWidth    float64 `json:",default=15"`
		DotMargin   float64 `json:",default=50"`
	}

	Pprof struct {
		Enabled bool   `json:",default=false"`
		Addr    string `json:",default=localhost:6060"`
	}
}

func Load(file string) (c Config, err error) {
	if err = conf.Load(file, &c, conf.UseEnv()); err != nil {
		return Config{}, err
	}
	return c, c.Validate()
}

func LoadFromYamlBytes(content []byte) (c Config, err error) {
	if err = conf.LoadFromYamlBytes(content, &c); err != nil {
		return Config{}, err
	}
	return c, c.Validate()
}

func (c Config) Validate() error {
	if c.BoardSize < 2 || c.BoardSize > chess.MaxBoardSize {
		return fmt.Errorf("BoardSize %d must be in [2, %d]", c.BoardSize, chess.MaxBoardSize)
	}
	if c.Layout.DotDistance <= 0 {
		return errors.New("Layout.DotDistance must be positive")
	}
	if c.Layout.DotWidth < 0 || c.Layout.DotWidth >= c.Layout.DotDistance {
		return fmt.Errorf("Layout.DotWidth %v must be in [0, %v)", c.Layout.DotWidth, c.Layout.DotDistance)
	}
	if c.PushInterval <= 0 {
		return fmt.Errorf("PushInterval %v must be positive", c.PushInterval)
	}
	return nil
}
