//go:build tools
// +build tools

package tools

import (
	_ "go.uber.org/mock/gomock"
	_ "mvdan.cc/gofumpt"
)
