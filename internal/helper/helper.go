// Package helper invokes the privileged companion binary through
// pkexec for the readings that need root, and decodes its single-object
// JSON reply.
package helper

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"

	jsoniter "github.com/json-iterator/go"

	"ferrix-agent/internal/model"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// Modes understood by the helper binary.
const (
	ModeDMI     = "dmi"
	ModeModules = "kmods"
)

// envelope is the helper reply: exactly one of data or error is set.
type envelope struct {
	Data  json.RawMessage `json:"data,omitempty"`
	Error string          `json:"error,omitempty"`
}

// Run executes the helper in the given mode via pkexec and returns the
// raw data payload.
func Run(ctx context.Context, helperPath, mode string) (json.RawMessage, error) {
	var stdout bytes.Buffer
	cmd := exec.CommandContext(ctx, "pkexec", helperPath, mode)
	cmd.Stdout = &stdout
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("run helper %s %s: %w", helperPath, mode, err)
	}

	var env envelope
	if err := jsonAPI.Unmarshal(stdout.Bytes(), &env); err != nil {
		return nil, fmt.Errorf("decode helper reply: %w", err)
	}
	if env.Error != "" {
		return nil, errors.New(env.Error)
	}
	if env.Data == nil {
		return nil, errors.New("helper reply carries neither data nor error")
	}
	return env.Data, nil
}

// ReadDMI runs the helper in DMI mode and decodes the table.
func ReadDMI(ctx context.Context, helperPath string) (model.DMITable, error) {
	raw, err := Run(ctx, helperPath, ModeDMI)
	if err != nil {
		return model.DMITable{}, err
	}
	var table model.DMITable
	if err := jsonAPI.Unmarshal(raw, &table); err != nil {
		return model.DMITable{}, fmt.Errorf("decode dmi payload: %w", err)
	}
	return table, nil
}

// ReadKernelModules runs the helper in module-listing mode.
func ReadKernelModules(ctx context.Context, helperPath string) (model.KernelModules, error) {
	raw, err := Run(ctx, helperPath, ModeModules)
	if err != nil {
		return model.KernelModules{}, err
	}
	var mods model.KernelModules
	if err := jsonAPI.Unmarshal(raw, &mods); err != nil {
		return model.KernelModules{}, fmt.Errorf("decode kmods payload: %w", err)
	}
	return mods, nil
}
