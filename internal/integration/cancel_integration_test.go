package integration

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"kofamscan/internal/app"
)

func TestCtrlC_MidLoad_Exit130(t *testing.T) {
	// Large table so parsing is underway when the context is cancelled.
	dir := t.TempDir()
	kl := write(t, filepath.Join(dir, "ko_list"), koList)

	var b strings.Builder
	for i := 0; i < 400000; i++ {
		b.WriteString(tableRow(fmt.Sprintf("gene%d", i), "K00001", 1e-5, 50.0, 1e-5, 50.0))
	}
	tbl := write(t, filepath.Join(dir, "big.tbl"), b.String())
	defer os.Remove(tbl)

	ctx, cancel := context.WithCancel(context.Background())
	// Cancel shortly after start.
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	code := app.RunContext(ctx, []string{"-q", "-k", kl, tbl}, io.Discard, io.Discard)
	if code != 130 {
		t.Fatalf("expected exit 130 on cancel, got %d", code)
	}
}
