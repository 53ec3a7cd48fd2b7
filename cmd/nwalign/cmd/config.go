// Copyright © 2024 Wei Shen <shenwei356@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package cmd

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/strkit/nwalign"
)

// ScoringConfig is unmarshalled from viper settings.
type ScoringConfig struct {
	Match    int `mapstructure:"match"`
	Mismatch int `mapstructure:"mismatch"`
	GapOpen  int `mapstructure:"gap-open"`
	GapExt   int `mapstructure:"gap-ext"`
}

// scoringKeys are the flag names and config keys of ScoringConfig.
var scoringKeys = []string{"match", "mismatch", "gap-open", "gap-ext"}

// bindScoringFlags adds the scoring flags, defaults are nwalign.DefaultScoring.
func bindScoringFlags(fs *pflag.FlagSet) error {
	d := nwalign.DefaultScoring
	fs.Int("match", d.Match, "match score")
	fs.Int("mismatch", d.Mismatch, "mismatch score")
	fs.Int("gap-open", d.GapOpen, "gap open penalty (positive)")
	fs.Int("gap-ext", d.GapExt, "gap extension penalty (positive, not larger than --gap-open)")

	for _, name := range scoringKeys {
		if err := viper.BindPFlag(name, fs.Lookup(name)); err != nil {
			return fmt.Errorf("failed to bind flag --%s: %w", name, err)
		}
	}
	return nil
}

// newAligner builds an Aligner from the current settings.
func newAligner() (*nwalign.Aligner, error) {
	var c ScoringConfig
	if err := viper.Unmarshal(&c); err != nil {
		return nil, err
	}
	s, err := nwalign.NewScoring(c.Match, c.Mismatch, c.GapOpen, c.GapExt)
	if err != nil {
		return nil, err
	}
	return nwalign.NewWithScoring(s)
}
