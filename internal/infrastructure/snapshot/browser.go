package snapshot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"
	"golang.org/x/sync/semaphore"

	"namevalue/internal/view"
	"namevalue/pkg/contextx"
	"namevalue/pkg/logx"
)

const (
	// DeviceScale множитель пикселей снимка.
	DeviceScale = 2

	viewportHeight = 1200
	viewportMargin = 40
)

var (
	logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

	ErrBrowserClosed = errors.New("snapshot: browser closed")
)

type Options struct {
	// ExecPath путь к chrome/chromium, пусто = искать в PATH.
	ExecPath    string
	MaxParallel int
	Headless    bool
}

// Browser снимает карточки во вкладках одного headless Chrome. Каждый снимок
// открывает свою вкладку и закрывает её после захвата.
type Browser struct {
	allocCtx    context.Context //nolint:containedctx
	allocCancel context.CancelFunc

	browserCtx    context.Context //nolint:containedctx
	browserCancel context.CancelFunc

	sem       *semaphore.Weighted
	closeOnce sync.Once
}

func NewBrowser(ctx context.Context, opts Options) (*Browser, error) {
	if opts.MaxParallel <= 0 {
		opts.MaxParallel = 1
	}

	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:], //nolint:gocritic
		chromedp.Flag("headless", opts.Headless),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("hide-scrollbars", true),
		chromedp.Flag("mute-audio", true),
		chromedp.Flag("no-first-run", true),
		chromedp.Flag("no-default-browser-check", true),
		chromedp.Flag("disable-background-networking", true),
		chromedp.Flag("disable-background-timer-throttling", true),
		chromedp.Flag("disable-renderer-backgrounding", true),
		chromedp.Flag("disable-sync", true),
		chromedp.Flag("disable-translate", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("font-render-hinting", "none"),
	)

	if opts.ExecPath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(opts.ExecPath))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(context.WithoutCancel(ctx), allocOpts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)

	// пустой Run поднимает процесс браузера
	if err := chromedp.Run(browserCtx); err != nil {
		browserCancel()
		allocCancel()
		browserUp.Set(0)

		return nil, fmt.Errorf("chromedp.Run: %w", err)
	}

	browserUp.Set(1)

	logger(ctx).Info("headless browser started", slog.Int("max_parallel", opts.MaxParallel))

	return &Browser{
		allocCtx:      allocCtx,
		allocCancel:   allocCancel,
		browserCtx:    browserCtx,
		browserCancel: browserCancel,
		sem:           semaphore.NewWeighted(int64(opts.MaxParallel)),
	}, nil
}

// Capture рендерит документ в отдельной вкладке и возвращает PNG, залитый
// непрозрачным фоном карточки.
func (b *Browser) Capture(ctx context.Context, doc view.CardDocument) ([]byte, error) {
	if err := b.Ready(ctx); err != nil {
		return nil, err
	}

	if err := b.sem.Acquire(ctx, 1); err != nil {
		return nil, fmt.Errorf("sem.Acquire: %w", err)
	}
	defer b.sem.Release(1)

	started := time.Now()

	tabCtx, cancelTab := chromedp.NewContext(b.browserCtx)
	defer cancelTab()

	// вкладка живёт не дольше запроса
	stop := context.AfterFunc(ctx, cancelTab)
	defer stop()

	var raw []byte

	err := chromedp.Run(tabCtx,
		emulation.SetDeviceMetricsOverride(int64(doc.Width+viewportMargin), viewportHeight, 1, false),
		emulation.SetDefaultBackgroundColorOverride().WithColor(&cdp.RGBA{
			R: int64(doc.Background.R),
			G: int64(doc.Background.G),
			B: int64(doc.Background.B),
			A: 1,
		}),
		chromedp.Navigate("about:blank"),
		setDocumentContent(doc.HTML),
		waitFonts(),
		chromedp.ScreenshotScale(doc.Selector, DeviceScale, &raw, chromedp.ByQuery, chromedp.NodeVisible),
	)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("chromedp.Run: %w", ctxErr)
		}

		return nil, fmt.Errorf("chromedp.Run: %w", err)
	}

	png, err := Flatten(raw, doc.Background)
	if err != nil {
		return nil, fmt.Errorf("Flatten: %w", err)
	}

	logger(ctx).Debug("card captured",
		slog.Int(logx.FieldExportBytes, len(png)),
		slog.Duration("took", time.Since(started)),
	)

	return png, nil
}

// Ready для readiness-пробы.
func (b *Browser) Ready(context.Context) error {
	if b.browserCtx.Err() != nil {
		return ErrBrowserClosed
	}

	return nil
}

func (b *Browser) Close() {
	b.closeOnce.Do(func() {
		b.browserCancel()
		b.allocCancel()
		browserUp.Set(0)
	})
}

func setDocumentContent(html string) chromedp.Action {
	return chromedp.ActionFunc(func(ctx context.Context) error {
		tree, err := page.GetFrameTree().Do(ctx)
		if err != nil {
			return fmt.Errorf("page.GetFrameTree: %w", err)
		}

		if err := page.SetDocumentContent(tree.Frame.ID, html).Do(ctx); err != nil {
			return fmt.Errorf("page.SetDocumentContent: %w", err)
		}

		return nil
	})
}

// waitFonts ждёт document.fonts.ready, иначе текст снимется системным шрифтом.
func waitFonts() chromedp.Action {
	var loaded bool

	return chromedp.Evaluate(`document.fonts.ready.then(() => true)`, &loaded,
		func(p *runtime.EvaluateParams) *runtime.EvaluateParams {
			return p.WithAwaitPromise(true)
		},
	)
}
