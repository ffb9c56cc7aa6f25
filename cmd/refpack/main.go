// cmd/refpack/main.go
package main

import (
	"context"
	"io"

	"github.com/fulldump/goconfig"

	"refinspect/internal/appshell"
	"refinspect/internal/packapp"
)

func main() {
	c := packapp.DefaultConfig()
	goconfig.Read(&c)

	appshell.Main(func(ctx context.Context, stdout, stderr io.Writer) int {
		return packapp.RunContext(ctx, c, stdout, stderr)
	})
}
