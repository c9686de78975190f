// Package compose orchestrates the deterministic engines with the optional
// polish step: projection + template letter always succeed; a polished
// rewrite is accepted only when it passes every lint rule, and any failure
// falls back to the template letter.
package compose

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/ymorimoto/mirai-letter/internal/letter"
	"github.com/ymorimoto/mirai-letter/internal/lettergen"
	"github.com/ymorimoto/mirai-letter/internal/letterlint"
	"github.com/ymorimoto/mirai-letter/internal/letterpolish"
	"github.com/ymorimoto/mirai-letter/internal/projection"
)

const defaultPolishTimeout = 4 * time.Second

var tracer = otel.Tracer("github.com/ymorimoto/mirai-letter/internal/compose")

// CallerFactory builds the polish caller at request time, so the credential
// is read from the environment per call. Nil disables polishing entirely.
type CallerFactory func() (letterpolish.Caller, error)

// Result is the full outcome for one request.
type Result struct {
	Projection letter.Projection
	Content    letter.Content
}

// Service owns the orchestration flow and the rewrite cache.
type Service struct {
	factory CallerFactory
	cache   CacheStore
	timeout time.Duration
	logger  *zap.Logger
}

func NewService(factory CallerFactory, cache CacheStore, timeout time.Duration, logger *zap.Logger) *Service {
	if cache == nil {
		cache = NewMemoryCache()
	}
	if timeout <= 0 {
		timeout = defaultPolishTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{factory: factory, cache: cache, timeout: timeout, logger: logger}
}

// Compose computes the projection and letter content. The returned error is
// non-nil only for the missing-credential case; every other polish failure
// is logged and recovered by returning the deterministic base content.
func (s *Service) Compose(ctx context.Context, in letter.Input) (Result, error) {
	ctx, span := tracer.Start(ctx, "compose.letter")
	defer span.End()

	proj := projection.Compute(in)
	res := Result{Projection: proj, Content: lettergen.BuildContent(in, proj)}
	span.SetAttributes(
		attribute.String("letter.goal", string(in.Goal)),
		attribute.Int("letter.quality_tier", proj.QualityTier),
	)

	if s.factory == nil {
		return res, nil
	}

	fp := fingerprint(in, proj)
	if cached, ok := s.cache.Get(fp); ok {
		if polished, ok := s.apply(res.Content, cached.Line2, cached.Line3); ok {
			res.Content = polished
			return res, nil
		}
	}

	caller, err := s.factory()
	if err != nil {
		if errors.Is(err, letterpolish.ErrMissingAPIKey) {
			return res, err
		}
		s.logger.Warn("polish caller unavailable, using template letter", zap.Error(err))
		return res, nil
	}

	lines := strings.Split(res.Content.Letter, "\n")
	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	rw, err := letterpolish.NewRewriter(caller).Rewrite(callCtx, in, lines[1], lines[2])
	if err != nil {
		logPolishFailure(s.logger, err)
		return res, nil
	}

	polished, ok := s.apply(res.Content, rw.Line2, rw.Line3)
	if !ok {
		s.logger.Warn("polished rewrite rejected by lint, using template letter")
		return res, nil
	}
	s.cache.Set(fp, CachedRewrite{Line2: rw.Line2, Line3: rw.Line3, SavedAt: time.Now()})
	res.Content = polished
	return res, nil
}

// apply rebuilds the letter with the rewritten middle lines and accepts the
// result only when the full rule set still passes. Lines 1/4/5/6/7 are fixed
// by construction.
func (s *Service) apply(content letter.Content, line2, line3 string) (letter.Content, bool) {
	candidate := lettergen.ReplaceMiddleLines(content.Letter, line2, line3)
	if candidate == content.Letter {
		return content, false
	}
	if len(letterlint.CheckBundle(candidate, content.PlanSave, content.PlanGrow, content.PlanProtect, content.CTA)) > 0 {
		return content, false
	}
	content.Letter = candidate
	content.Polished = true
	return content, true
}

// fingerprint is the coarse cache key for materially identical requests.
func fingerprint(in letter.Input, proj letter.Projection) string {
	variant := lettergen.PickVariant(in.Age, in.HouseholdNow, in.KidsFuture, in.Goal)
	severity := lettergen.Severity(in, proj)
	return fmt.Sprintf("%d|%d|%d|%s|%s|%d|%d",
		in.Age, in.HouseholdNow, in.KidsFuture, in.Goal, strings.TrimSpace(in.GoalOther), variant, severity)
}

func logPolishFailure(logger *zap.Logger, err error) {
	var perr *letterpolish.Error
	if errors.As(err, &perr) {
		logger.Warn("letter polish failed, using template letter",
			zap.String("kind", string(perr.Kind)),
			zap.Int("upstream_status", perr.UpstreamStatus),
			zap.String("hint", perr.Hint()),
			zap.Error(err),
		)
		return
	}
	logger.Warn("letter polish failed, using template letter", zap.Error(err))
}
