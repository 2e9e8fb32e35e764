package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"time"

	"git.appkode.ru/pub/go/failure"
	"github.com/fatih/color"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"namevalue/internal/animator"
	"namevalue/internal/domain/entity"
	"namevalue/internal/domain/service/valuation"
	"namevalue/internal/domain/value"
	"namevalue/internal/infrastructure/snapshot"
	"namevalue/internal/view"
	"namevalue/pkg/rest"
)

const defaultDuration = 1500 * time.Millisecond

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals

func runCard(cmd *cobra.Command, args []string) error {
	noAnimate, _ := cmd.Flags().GetBool("no-animate")
	asJSON, _ := cmd.Flags().GetBool("json")
	duration, _ := cmd.Flags().GetDuration("duration")

	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// в CLI карточка только печатается, браузер не нужен
	svc := valuation.NewService(snapshot.Disabled{})

	name, v, err := svc.Evaluate(ctx, args[0])
	if err != nil {
		if failure.IsInvalidArgumentError(err) {
			return errors.New(failure.Description(err))
		}

		return fmt.Errorf("svc.Evaluate: %w", err)
	}

	out := cmd.OutOrStdout()

	if asJSON {
		return printJSON(out, name, v)
	}

	if noAnimate {
		duration = 0
	}

	printCard(ctx, out, name, v, duration)

	return nil
}

func printCard(ctx context.Context, out io.Writer, name value.Name, v entity.Valuation, duration time.Duration) {
	style := v.Grade().Style()
	gradeColor := color.New(gradeAttribute(v.Grade()), color.Bold)
	faint := color.New(color.Faint)

	fmt.Fprintf(out, "%s\n", color.New(color.FgHiMagenta).Sprint("✨ 이름 포트폴리오"))
	fmt.Fprintf(out, "%s 📈   name grade %s\n\n", color.New(color.Bold).Sprint(name), gradeColor.Sprintf("[%s]", style.Label))
	fmt.Fprintf(out, "이름 시가총액  %s\n", faint.Sprint(style.Description))

	countUp(ctx, out, v.MarketCap(), duration)

	fmt.Fprintf(out, "\n💡 한 줄 코멘트\n   %s\n", v.Comment())
	fmt.Fprintf(out, "\n👥 동명이인 유명인\n")

	sameName := v.SameName()
	if len(sameName) == 0 {
		fmt.Fprintf(out, "   등록된 동명이인 정보가 없어요. %s\n", faint.Sprint("아마도 이 이름의 원조일지도요!"))
	}

	for _, person := range sameName {
		fmt.Fprintf(out, "   • %s\n", person)
	}
}

// countUp перерисовывает строку капитализации на каждом кадре.
func countUp(ctx context.Context, out io.Writer, marketCap int, duration time.Duration) {
	bold := color.New(color.Bold)

	draw := func(frame int) {
		fmt.Fprintf(out, "\r   market cap  %s   ", bold.Sprint(view.FormatMarketCap(frame)))
	}

	anim := animator.New(animator.DefaultFrameInterval)
	defer anim.Stop()

	handle := anim.Animate(ctx, marketCap, duration, draw)
	<-handle.Done()

	// прерванный счётчик всё равно показывает итог
	if ctx.Err() != nil {
		draw(marketCap)
	}

	fmt.Fprintln(out)
}

func printJSON(out io.Writer, name value.Name, v entity.Valuation) error {
	style := v.Grade().Style()

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")

	if err := enc.Encode(rest.Valuation{
		Name:             name.String(),
		MarketCap:        v.MarketCap(),
		MarketCapLabel:   view.FormatMarketCap(v.MarketCap()),
		Grade:            style.Label,
		GradeColor:       style.Color,
		GradeDescription: style.Description,
		Comment:          v.Comment(),
		SameName:         v.SameName(),
		CardFilename:     valuation.DownloadFilename(name.String()),
	}); err != nil {
		return fmt.Errorf("json.Encode: %w", err)
	}

	return nil
}

func gradeAttribute(g entity.Grade) color.Attribute {
	switch g {
	case entity.GradeS:
		return color.FgHiYellow
	case entity.GradeA:
		return color.FgMagenta
	case entity.GradeB:
		return color.FgBlue
	case entity.GradeC:
		return color.FgGreen
	default:
		return color.FgWhite
	}
}
