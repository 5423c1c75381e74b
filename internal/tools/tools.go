//go:build tools

// Package tools pins the versions of the development tools, install them with
// go install inside this directory.
package tools

import (
	_ "github.com/fdaines/spm-go"
	_ "github.com/golangci/golangci-lint/cmd/golangci-lint"
	_ "github.com/jackc/tern/v2"
	_ "github.com/maxbrunsfeld/counterfeiter/v6"
	_ "goa.design/model/cmd/mdl"
)
