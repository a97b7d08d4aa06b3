package service

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Sentret/internal/dto"
	"github.com/lshigami/Sentret/internal/model"
	"github.com/lshigami/Sentret/internal/quiz"
	"github.com/lshigami/Sentret/internal/repository"
	"github.com/rs/zerolog/log"
)

const recentAttemptLimit = 10

type ProfileService interface {
	GetProfile(userID uint) (*dto.ProfileDTO, error)
}

type profileService struct {
	userRepo  repository.UserRepository
	boardRepo repository.LeaderboardRepository
}

func NewProfileService(userRepo repository.UserRepository, boardRepo repository.LeaderboardRepository) ProfileService {
	return &profileService{userRepo: userRepo, boardRepo: boardRepo}
}

func (s *profileService) GetProfile(userID uint) (*dto.ProfileDTO, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("Failed to load user for profile")
		return nil, fmt.Errorf("%w: %v", quiz.ErrFetch, err)
	}

	attempts, err := s.boardRepo.FindByUser(userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("Failed to load attempts for profile")
		return nil, fmt.Errorf("%w: %v", quiz.ErrFetch, err)
	}

	var userDTO dto.UserDTO
	if err := copier.Copy(&userDTO, user); err != nil {
		return nil, err
	}

	profile := &dto.ProfileDTO{
		User:  userDTO,
		Stats: computeStats(attempts),
	}
	for i, attempt := range attempts {
		if i >= recentAttemptLimit {
			break
		}
		profile.RecentAttempts = append(profile.RecentAttempts, dto.AttemptDTO{
			ID:             attempt.ID,
			Score:          attempt.Score,
			TotalQuestions: attempt.TotalQuestions,
			CompletedAt:    attempt.CompletedAt,
		})
	}
	return profile, nil
}

func computeStats(attempts []model.LeaderboardEntry) dto.StatsDTO {
	stats := dto.StatsDTO{TotalAttempts: len(attempts)}
	if len(attempts) == 0 {
		return stats
	}

	total := 0
	for _, attempt := range attempts {
		total += attempt.Score
		stats.TotalQuestionsAnswered += attempt.TotalQuestions
		if attempt.Score > stats.BestScore {
			stats.BestScore = attempt.Score
		}
	}
	stats.AverageScore = float64(total) / float64(len(attempts))
	return stats
}
