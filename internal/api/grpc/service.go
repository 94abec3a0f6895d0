package grpc

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/pixel-phantoms/phantomboard/internal/app"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

//go:generate mockgen -destination=mock/appservice.go -package=mock github.com/pixel-phantoms/phantomboard/internal/api/grpc AppService

// AppService returns leaderboard pages.
type AppService interface {
	Page(ctx context.Context, repo app.Repo, page int, refresh bool) (*app.Leaderboard, app.Page, error)
}

// Service implements LeaderboardServer, acting as a direct proxy to AppService.
type Service struct {
	appService AppService
}

var _ LeaderboardServer = &Service{}

// NewService returns new Service instance
func NewService(appService AppService) *Service {
	return &Service{
		appService: appService,
	}
}

// Page calls service and returns reply.
//
// Request fields: owner, repo, page (defaults to 1) and refresh.
func (s *Service) Page(ctx context.Context, r *structpb.Struct) (*structpb.Struct, error) {
	fields := r.GetFields()
	repo := app.Repo{
		Owner: fields["owner"].GetStringValue(),
		Name:  fields["repo"].GetStringValue(),
	}
	page, err := pageNumber(fields["page"])
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	lb, p, err := s.appService.Page(ctx, repo, page, fields["refresh"].GetBoolValue())
	if err != nil {
		return nil, statusError(err)
	}

	reply, err := structpb.NewStruct(newReply(lb, p))
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encoding reply: %v", err)
	}

	return reply, nil
}

// pageNumber reads optional page field. Missing page means the first one.
func pageNumber(v *structpb.Value) (int, error) {
	if v == nil {
		return 1, nil
	}

	n, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return 0, app.InvalidRequestError("page must be a number")
	}
	f := n.NumberValue
	if f != math.Trunc(f) || math.IsInf(f, 0) || f > math.MaxInt32 || f < math.MinInt32 {
		return 0, app.InvalidRequestError("page must be a whole number")
	}

	return int(f), nil
}

// PageRequest builds request struct for LeaderboardClient.Page.
func PageRequest(repo app.Repo, page int, refresh bool) *structpb.Struct {
	return &structpb.Struct{
		Fields: map[string]*structpb.Value{
			"owner":   structpb.NewStringValue(repo.Owner),
			"repo":    structpb.NewStringValue(repo.Name),
			"page":    structpb.NewNumberValue(float64(page)),
			"refresh": structpb.NewBoolValue(refresh),
		},
	}
}

func newReply(lb *app.Leaderboard, p app.Page) map[string]interface{} {
	entries := make([]interface{}, 0, len(p.Entries))
	for _, e := range p.Entries {
		entries = append(entries, map[string]interface{}{
			"rank":      e.Rank,
			"login":     e.Login,
			"avatarUrl": e.AvatarURL,
			"prs":       e.PRs,
			"points":    e.Points,
			"league":    e.League.String(),
			"badge":     e.League.Badge(),
		})
	}

	lead := ""
	if lb.Lead != nil {
		lead = lb.Lead.Login
	}

	s := lb.Summary
	return map[string]interface{}{
		"repo": lb.Repo.String(),
		"lead": lead,
		"summary": map[string]interface{}{
			"contributors": s.Contributors,
			"mergedPRs":    s.MergedPRs,
			"points":       s.Points,
			"stars":        s.Stars,
			"forks":        s.Forks,
			"commits":      s.Commits,
		},
		"page":       p.Number,
		"totalPages": p.TotalPages,
		"hasPrev":    p.HasPrev,
		"hasNext":    p.HasNext,
		"entries":    entries,
	}
}

func statusError(err error) error {
	switch {
	case app.IsInvalidRequestError(err):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, app.ErrOutOfRange):
		return status.Error(codes.OutOfRange, err.Error())
	case app.IsNotFoundError(err), errors.Is(err, app.ErrNoSnapshot):
		return status.Error(codes.NotFound, err.Error())
	case app.IsTooManyRequestsError(err):
		return status.Error(codes.ResourceExhausted, "rate limit exceeded")
	case errors.Is(err, app.ErrFetchFailure):
		return status.Error(codes.Unavailable, app.ErrFetchFailure.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		return status.Error(codes.Internal, fmt.Sprintf("service.Page: %v", err))
	}
}
