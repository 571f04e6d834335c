// SPDX-License-Identifier: MIT

package algorithms

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/wgraph/persist"
)

// SaveErr writes the bound graph to file.
func (a *Algorithms) SaveErr(file string) error {
	g := a.Graph()
	if g == nil {
		return ErrUninitialized
	}

	return persist.Save(file, g, persist.WithFormat(a.format), persist.WithLogger(a.log))
}

// LoadErr reads file and, only on success, binds the loaded graph.
// On failure the current binding is untouched.
func (a *Algorithms) LoadErr(file string) error {
	g, err := persist.Load(file, persist.WithFormat(a.format), persist.WithLogger(a.log))
	if err != nil {
		return err
	}
	a.Init(g)

	return nil
}

// Save is SaveErr reporting only success. Failures are logged at warn level.
func (a *Algorithms) Save(file string) bool {
	if err := a.SaveErr(file); err != nil {
		a.log.Warn("save graph failed", zap.String("file", file), zap.Error(err))
		return false
	}

	return true
}

// Load is LoadErr reporting only success. Failures are logged at warn level.
func (a *Algorithms) Load(file string) bool {
	if err := a.LoadErr(file); err != nil {
		a.log.Warn("load graph failed", zap.String("file", file), zap.Error(err))
		return false
	}

	return true
}
