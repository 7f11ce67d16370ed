package archive

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/codealchemist/codealchemist/common/credits"
	"github.com/codealchemist/codealchemist/compression"
)

// Program names probed in order for the formats without a Go writer.
var (
	SevenZipTools = []string{"7zz", "7z", "7za"}
	RarTools      = []string{"rar"}
)

// LookupTool returns the first of names found in PATH.
func LookupTool(names []string) (string, error) {
	for _, name := range names {
		if p, err := exec.LookPath(name); err == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrToolNotFound, strings.Join(names, ", "))
}

// ToolsFor returns the external programs able to write f, if any.
func ToolsFor(f Format) []string {
	switch f {
	case Format7Z:
		return SevenZipTools
	case FormatRAR:
		return RarTools
	}
	return nil
}

func externalArgs(f Format, level compression.Level, dst string, inputs ...string) []string {
	var args []string
	switch f {
	case Format7Z:
		args = []string{"a", "-t7z", "-y", "-bd"}
		if level != compression.LevelDefault {
			args = append(args, "-mx="+strconv.Itoa(clampLevel(level)))
		}
	case FormatRAR:
		args = []string{"a", "-ep1", "-y", "-idq"}
		if level != compression.LevelDefault {
			args = append(args, "-m"+strconv.Itoa(1+(clampLevel(level)-1)/2))
		}
	}
	args = append(args, dst)
	return append(args, inputs...)
}

func clampLevel(l compression.Level) int {
	switch {
	case l < compression.LevelFast:
		return int(compression.LevelFast)
	case l > compression.LevelBest:
		return int(compression.LevelBest)
	}
	return int(l)
}

// writeExternal runs 7-Zip or RAR on src plus a CREDITS.txt file.
func writeExternal(ctx context.Context, src, dst string, f Format, level compression.Level, p *progress) error {
	tool, err := LookupTool(ToolsFor(f))
	if err != nil {
		return err
	}

	tmp, err := os.MkdirTemp("", "codealchemist-")
	if err != nil {
		return err
	}
	defer os.RemoveAll(tmp)

	creditsPath := filepath.Join(tmp, credits.ReadmeName)
	if err := os.WriteFile(creditsPath, []byte(credits.Readme()), 0644); err != nil {
		return err
	}

	// both tools append to an existing archive
	if err := os.Remove(dst); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to replace existing archive: %w", err)
	}

	cmd := exec.CommandContext(ctx, tool, externalArgs(f, level, dst, src, creditsPath)...)
	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s failed: %w: %s", filepath.Base(tool), err, strings.TrimSpace(output.String()))
	}

	p.add(int(p.total))
	return nil
}
