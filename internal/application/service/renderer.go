package service

import (
	"context"
	"io"

	"github.com/i-shreyansh/portfolio/internal/application/usecase/portfolio"
	"github.com/i-shreyansh/portfolio/internal/domain/uistate"
)

// PageRenderer writes the full HTML page for a content snapshot and a UI
// state. Fingerprint identifies every renderer setting that ends up in the
// output, so pages rendered under different settings never share a cache
// entry.
type PageRenderer interface {
	Render(ctx context.Context, w io.Writer, content *portfolio.Portfolio, state uistate.State) error
	Fingerprint() string
}
