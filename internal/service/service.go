package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/goserg/teambalancer/internal/domain"
	"github.com/goserg/teambalancer/internal/normalize"
	"github.com/goserg/teambalancer/internal/rank"
	"github.com/goserg/teambalancer/internal/roles"
	"github.com/goserg/teambalancer/internal/teams"
)

// Balancer runs the balancing pipeline over one roster at a time.
// It owns its random source and is not safe for concurrent use.
type Balancer struct {
	rnd      teams.Rand
	validate *validator.Validate
	log      *logrus.Entry
}

type Result struct {
	TeamA []domain.Line
	TeamB []domain.Line
}

func New(rnd teams.Rand, log *logrus.Logger) *Balancer {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("toml")
	})
	return &Balancer{
		rnd:      rnd,
		validate: v,
		log:      log.WithField("name", "balancer"),
	}
}

// Balance assigns roles by preference and splits every role pair across the
// two teams. Any invalid row aborts the run before assignment starts.
func (b *Balancer) Balance(inputs []domain.PlayerInput) (Result, error) {
	if len(inputs) != roles.MatchSize {
		return Result{}, fmt.Errorf("%w: need %d, got %d", roles.ErrInsufficientPlayers, roles.MatchSize, len(inputs))
	}
	players := make([]domain.Player, 0, len(inputs))
	for i := range inputs {
		p, err := b.player(inputs[i])
		if err != nil {
			b.log.WithError(err).WithField("player", i+1).Warn("invalid player")
			return Result{}, playerError(i, err)
		}
		players = append(players, p)
	}

	assignment, err := roles.Assign(players)
	if err != nil {
		return Result{}, err
	}
	teamA, teamB, err := teams.Split(assignment, b.rnd)
	if err != nil {
		return Result{}, err
	}
	for i := range teamA {
		b.log.WithFields(logrus.Fields{
			"role":   teamA[i].Role,
			"team_a": teamA[i].Player.Name,
			"team_b": teamB[i].Player.Name,
		}).Debug("role matched")
	}
	b.log.WithFields(logrus.Fields{
		"score_a": teamScore(teamA),
		"score_b": teamScore(teamB),
	}).Info("teams balanced")

	return Result{TeamA: teamLines(teamA), TeamB: teamLines(teamB)}, nil
}

// Random shuffles the roster into two teams without looking at roles or ranks.
// Only names and ranks need to be present.
func (b *Balancer) Random(inputs []domain.PlayerInput) (Result, error) {
	for i := range inputs {
		in := trimmed(inputs[i])
		if err := b.validate.StructPartial(in, "Name", "Rank"); err != nil {
			return Result{}, playerError(i, err)
		}
	}
	lines := lo.Map(inputs, func(in domain.PlayerInput, _ int) domain.Line {
		in = trimmed(in)
		return domain.Line{Name: in.Name, Rank: rank.Display(in.Rank)}
	})
	a, bb, err := teams.Shuffle(lines, b.rnd)
	if err != nil {
		return Result{}, err
	}
	b.log.WithField("players", len(lines)).Info("random teams")
	return Result{TeamA: a, TeamB: bb}, nil
}

func (b *Balancer) player(in domain.PlayerInput) (domain.Player, error) {
	in = trimmed(in)
	if err := b.validate.Struct(in); err != nil {
		return domain.Player{}, err
	}
	score, err := rank.Parse(in.Rank)
	if err != nil {
		return domain.Player{}, &PlayerError{Field: "rank", Err: err}
	}
	return domain.Player{
		ID:        uuid.New(),
		Name:      in.Name,
		RawRank:   in.Rank,
		Score:     score,
		Primary:   domain.Role(in.Primary),
		Secondary: domain.Role(in.Secondary),
	}, nil
}

func trimmed(in domain.PlayerInput) domain.PlayerInput {
	return domain.PlayerInput{
		Name:      strings.TrimSpace(in.Name),
		Rank:      strings.TrimSpace(in.Rank),
		Primary:   normalize.Name(in.Primary),
		Secondary: normalize.Name(in.Secondary),
	}
}

// playerError attaches the 1-based row index to err.
func playerError(i int, err error) error {
	var perr *PlayerError
	if errors.As(err, &perr) {
		perr.Index = i + 1
		return perr
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return &PlayerError{
			Index: i + 1,
			Field: fe.Field(),
			Err:   fmt.Errorf("%w: %s", ErrInvalidField, fe.Tag()),
		}
	}
	return &PlayerError{Index: i + 1, Err: err}
}

func teamLines(team domain.Team) []domain.Line {
	return lo.Map(team, func(e domain.TeamEntry, _ int) domain.Line {
		return domain.Line{
			Name: e.Player.Name,
			Rank: rank.Display(e.Player.RawRank),
			Role: e.Role,
		}
	})
}

func teamScore(team domain.Team) int {
	return lo.SumBy(team, func(e domain.TeamEntry) int { return e.Player.Score })
}
