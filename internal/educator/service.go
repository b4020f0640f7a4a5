package educator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/roach88/masft/internal/catalog"
	"github.com/roach88/masft/internal/format"
	"github.com/roach88/masft/internal/history"
	"github.com/roach88/masft/internal/resolve"
)

// Service answers queries against one catalog and records them in one log.
type Service struct {
	cat          *catalog.Catalog
	resolver     *resolve.Resolver
	log          history.Log
	logger       *slog.Logger
	metrics      *Metrics
	historyLimit int
	resolverOpts []resolve.Option
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the structured logger. The default discards output.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// WithMetrics sets the metrics sink. The default uses a private registry.
func WithMetrics(m *Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithResolverOptions passes options to the resolver.
func WithResolverOptions(opts ...resolve.Option) Option {
	return func(s *Service) { s.resolverOpts = append(s.resolverOpts, opts...) }
}

// WithHistoryLimit sets how many records History returns for limit <= 0.
func WithHistoryLimit(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.historyLimit = n
		}
	}
}

var errNoLog = errors.New("no interaction log configured")

// New builds a service. log may be history.Unavailable when no store could
// be opened; a nil log behaves the same way.
func New(cat *catalog.Catalog, log history.Log, opts ...Option) *Service {
	s := &Service{
		cat:          cat,
		log:          log,
		historyLimit: history.DefaultHistoryLimit,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if s.metrics == nil {
		s.metrics = NewMetrics(prometheus.NewRegistry())
	}
	if s.log == nil {
		s.log = history.Unavailable(errNoLog)
	}
	s.resolver = resolve.New(cat, s.resolverOpts...)
	return s
}

// Catalog returns the catalog the service answers from.
func (s *Service) Catalog() *catalog.Catalog {
	return s.cat
}

// Answer is the response to one query.
type Answer struct {
	Query   string                     `json:"query"`
	Outcome resolve.Outcome            `json:"outcome"`
	Result  resolve.Result             `json:"-"`
	Payload format.Payload             `json:"payload"`
	Record  *history.InteractionRecord `json:"record,omitempty"`

	// Warning is set when the interaction could not be logged.
	Warning error `json:"-"`
}

// Ask resolves query, formats the result and logs the interaction.
// Requests to list every failure mode or category bypass the resolver and
// are logged as no_match, since no single entity answers them.
// It never fails; a log failure is reported in Answer.Warning.
func (s *Service) Ask(ctx context.Context, query string) Answer {
	var (
		result  resolve.Result
		payload format.Payload
	)
	if p, ok := s.listIntent(query); ok {
		result = resolve.NoMatch{}
		payload = p
		s.logger.Debug("list requested", "query", query, "kind", p.Kind)
	} else {
		result = s.resolver.Resolve(query)
		payload = format.Format(result, s.cat)
		s.logger.Debug("query resolved", "query", query, "outcome", result.Outcome())
	}
	s.metrics.Queries.WithLabelValues(string(result.Outcome())).Inc()

	ans := Answer{
		Query:   query,
		Outcome: result.Outcome(),
		Result:  result,
		Payload: payload,
	}

	rec, err := s.log.Record(ctx, query, result)
	if err != nil {
		ans.Warning = s.logFailure("record", err)
		return ans
	}
	ans.Record = &rec
	return ans
}

// Explain returns the per-entity score breakdown for query.
func (s *Service) Explain(query string) []resolve.Score {
	return s.resolver.Explain(query)
}

// ShowFailureMode returns the full payload for a failure mode and logs the view.
func (s *Service) ShowFailureMode(ctx context.Context, name string) (Answer, error) {
	fm, ok := s.cat.LookupFailureMode(name)
	if !ok {
		return Answer{}, &NotFoundError{Kind: catalog.KindFailureMode.String(), Name: name}
	}

	ans := Answer{
		Query:   name,
		Outcome: resolve.OutcomeResolved,
		Result:  resolve.Resolved{Entity: fm},
		Payload: format.FailureModePayload(fm),
	}
	s.metrics.Views.WithLabelValues(fm.Name).Inc()
	if err := s.log.RecordView(ctx, fm.Name); err != nil {
		ans.Warning = s.logFailure("record view", err)
	}
	return ans, nil
}

// ShowCategory returns a category with its explanation and members.
func (s *Service) ShowCategory(name string) (format.Payload, error) {
	p, ok := format.CategoryPayload(s.cat, name)
	if !ok {
		return format.Payload{}, &NotFoundError{Kind: catalog.KindCategory.String(), Name: name}
	}
	return p, nil
}

// ListCategories lists every category with its explanation.
func (s *Service) ListCategories() format.Payload {
	return format.AllCategories(s.cat)
}

// ListFailureModes lists failure modes grouped by category. A non-empty
// category restricts the list to that category.
func (s *Service) ListFailureModes(category string) (format.Payload, error) {
	all := format.AllFailureModes(s.cat)
	if category == "" {
		return all, nil
	}

	c, ok := s.cat.LookupCategory(category)
	if !ok {
		return format.Payload{}, &NotFoundError{Kind: catalog.KindCategory.String(), Name: category}
	}
	for _, g := range all.Groups {
		if g.Name == c.Name {
			all.Groups = []format.Group{g}
			break
		}
	}
	return all, nil
}

// Demonstrate picks one example scenario of a failure mode.
func (s *Service) Demonstrate(name string, rng *rand.Rand) (format.Payload, error) {
	fm, ok := s.cat.LookupFailureMode(name)
	if !ok {
		return format.Payload{}, &NotFoundError{Kind: catalog.KindFailureMode.String(), Name: name}
	}
	return format.DemonstrationPayload(fm, rng), nil
}

// History returns the most recent interactions. limit <= 0 uses the
// configured default.
func (s *Service) History(ctx context.Context, limit int) ([]history.InteractionRecord, error) {
	if limit <= 0 {
		limit = s.historyLimit
	}
	records, err := s.log.History(ctx, limit)
	if err != nil {
		return nil, s.logFailure("history", err)
	}
	return records, nil
}

// Stats is the usage summary.
type Stats struct {
	MostViewed    []history.ViewCount         `json:"most_viewed"`
	Feedback      history.FeedbackStats       `json:"feedback"`
	RecentQueries []history.InteractionRecord `json:"recent_queries"`
}

// Stats collects view counts, feedback summaries and recent queries.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	var (
		st  Stats
		err error
	)
	if st.MostViewed, err = s.log.MostViewed(ctx, s.historyLimit); err != nil {
		return Stats{}, s.logFailure("most viewed", err)
	}
	if st.Feedback, err = s.log.FeedbackStats(ctx); err != nil {
		return Stats{}, s.logFailure("feedback stats", err)
	}
	if st.RecentQueries, err = s.log.History(ctx, s.historyLimit); err != nil {
		return Stats{}, s.logFailure("history", err)
	}
	return st, nil
}

// FeedbackRequest rates the Index-th (1-based) solution of a failure mode.
type FeedbackRequest struct {
	FailureMode  string
	SolutionType history.SolutionType
	Index        int
	Rating       int
	Comment      string
}

// SubmitFeedback validates req against the catalog and stores it.
func (s *Service) SubmitFeedback(ctx context.Context, req FeedbackRequest) (history.Feedback, error) {
	fm, ok := s.cat.LookupFailureMode(req.FailureMode)
	if !ok {
		return history.Feedback{}, &NotFoundError{Kind: catalog.KindFailureMode.String(), Name: req.FailureMode}
	}

	var solutions []string
	switch req.SolutionType {
	case history.SolutionTactical:
		solutions = fm.TacticalSolutions
	case history.SolutionStructural:
		solutions = fm.StructuralSolutions
	default:
		return history.Feedback{}, fmt.Errorf("%w: solution type %q is not tactical or structural",
			history.ErrInvalidFeedback, req.SolutionType)
	}
	if req.Index < 1 || req.Index > len(solutions) {
		return history.Feedback{}, fmt.Errorf("%w: %s has %d %s solutions, got index %d",
			history.ErrInvalidFeedback, fm.Name, len(solutions), req.SolutionType, req.Index)
	}

	fb := history.Feedback{
		FailureMode:  fm.Name,
		SolutionType: req.SolutionType,
		Solution:     solutions[req.Index-1],
		Rating:       req.Rating,
		Comment:      req.Comment,
	}
	if err := s.log.RecordFeedback(ctx, fb); err != nil {
		if errors.Is(err, history.ErrInvalidFeedback) {
			return history.Feedback{}, err
		}
		return history.Feedback{}, s.logFailure("record feedback", err)
	}
	return fb, nil
}

// logFailure counts and logs a failed log operation and returns err.
func (s *Service) logFailure(op string, err error) error {
	s.metrics.LogFailures.WithLabelValues(op).Inc()
	s.logger.Warn("interaction log operation failed", "op", op, "error", err)
	return err
}
