package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/amirasaad/fxconvert/pkg/conversion"
	"github.com/amirasaad/fxconvert/pkg/money"
	convsvc "github.com/amirasaad/fxconvert/pkg/service/conversion"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

type fixedRate struct {
	rate float64
	err  error
}

func (f fixedRate) FetchRate(context.Context, money.Code, money.Code) (float64, error) {
	return f.rate, f.err
}

func (f fixedRate) Name() string { return "fixed" }

type harness struct {
	stdout, stderr bytes.Buffer
	envFile        string
	tuiRuns        int
	terminal       bool
}

func (h *harness) run(fetcher fixedRate, args ...string) error {
	o := &rootOptions{
		stdout: &h.stdout,
		stderr: &h.stderr,
		newService: func(envFile string, _ io.Writer) (*convsvc.Service, error) {
			h.envFile = envFile
			return convsvc.New(fetcher), nil
		},
		isTerminal: func() bool { return h.terminal },
		runTUI: func(context.Context, *convsvc.Service) error {
			h.tuiRuns++
			return nil
		},
	}
	cmd := newRootCommand(o)
	cmd.SetArgs(args)
	return cmd.Execute()
}

func TestConvertCommand(t *testing.T) {
	var h harness
	err := h.run(fixedRate{rate: 0.75}, "convert", "CAD", "USD", "10")
	require.NoError(t, err)
	assert.Equal(t, "10 CAD = 7.5000 USD\nExchange rate: 1 CAD = 0.7500 USD\n", h.stdout.String())
	assert.Empty(t, h.stderr.String())
	assert.Equal(t, ".env", h.envFile)
}

func TestConvertCommand_Failures(t *testing.T) {
	tests := []struct {
		name    string
		fetcher fixedRate
		args    []string
		want    string
	}{
		{"invalid base", fixedRate{rate: 1}, []string{"convert", "cad", "USD", "1"}, conversion.MsgInvalidBase},
		{"invalid amount", fixedRate{rate: 1}, []string{"convert", "CAD", "USD", "abc"}, conversion.MsgInvalidAmount},
		{"negative amount", fixedRate{rate: 1}, []string{"convert", "CAD", "USD", "-5"}, conversion.MsgInvalidAmount},
		{"upstream", fixedRate{err: conversion.NewAuthFailure(401)}, []string{"convert", "CAD", "USD", "1"}, conversion.MsgAuth},
		{"unexpected", fixedRate{err: errors.New("boom")}, []string{"convert", "CAD", "USD", "1"}, conversion.MsgUnexpected},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var h harness
			err := h.run(tt.fetcher, tt.args...)
			require.ErrorIs(t, err, errReported)
			assert.Equal(t, tt.want+"\n", h.stderr.String())
			assert.Empty(t, h.stdout.String())
		})
	}
}

func TestConvertCommand_ArgCount(t *testing.T) {
	var h harness
	err := h.run(fixedRate{}, "convert", "CAD", "USD")
	require.Error(t, err)
	assert.NotErrorIs(t, err, errReported)
}

func TestConvertCommand_EnvFileFlag(t *testing.T) {
	var h harness
	require.NoError(t, h.run(fixedRate{rate: 1}, "--env-file", "/tmp/fx.env", "convert", "CAD", "USD", "1"))
	assert.Equal(t, "/tmp/fx.env", h.envFile)
}

func TestCurrenciesCommand(t *testing.T) {
	var h harness
	require.NoError(t, h.run(fixedRate{}, "currencies"))
	assert.Equal(t,
		"CAD - Canadian Dollar\nUSD - US Dollar\nAUD - Australian Dollar\nGBP - British Pound\n",
		h.stdout.String())
}

func TestRootCommand_TUIWhenTerminal(t *testing.T) {
	h := harness{terminal: true}
	require.NoError(t, h.run(fixedRate{}))
	assert.Equal(t, 1, h.tuiRuns)

	h = harness{}
	require.NoError(t, h.run(fixedRate{}))
	assert.Zero(t, h.tuiRuns)
	assert.Contains(t, h.stdout.String(), "fxconvert")

	require.NoError(t, h.run(fixedRate{}, "tui"))
	assert.Equal(t, 1, h.tuiRuns)
}
