package output

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// DefaultConverter is the ImageMagick command used to convert between formats
const DefaultConverter = "convert"

// Convert runs `converter src dst` and returns the tool's combined output
func Convert(ctx context.Context, converter, src, dst string) (string, error) {
	if converter == "" {
		converter = DefaultConverter
	}
	cmd := exec.CommandContext(ctx, converter, src, dst)
	out, err := cmd.CombinedOutput()
	text := strings.TrimSpace(string(out))
	if err != nil {
		return text, fmt.Errorf("%s %s %s: %w", converter, src, dst, err)
	}
	return text, nil
}
