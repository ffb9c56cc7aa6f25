// cmd/refinspect/main.go
package main

import (
	"context"
	"io"
	"os"

	"refinspect/internal/app"
	"refinspect/internal/appshell"
)

func main() {
	appshell.Main(func(ctx context.Context, stdout, stderr io.Writer) int {
		return app.RunContext(ctx, os.Args[1:], stdout, stderr)
	})
}
