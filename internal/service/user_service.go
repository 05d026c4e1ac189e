package service

import (
	"context"

	"github.com/teamMongle/Mongle-Server/internal/models"
	"github.com/teamMongle/Mongle-Server/internal/repository"
)

// recentViewsLimit bounds the dashboard's recently-viewed list.
const recentViewsLimit = 5

type UserService interface {
	UpdateProfile(ctx context.Context, userID int64, params repository.UpdateProfileParams) error
	Dashboard(ctx context.Context, userID int64) (*models.Dashboard, error)
}

type userService struct {
	userRepo       repository.UserRepository
	workRepo       repository.WorkRepository
	engagementRepo repository.EngagementRepository
}

func NewUserService(
	userRepo repository.UserRepository,
	workRepo repository.WorkRepository,
	engagementRepo repository.EngagementRepository,
) UserService {
	return &userService{
		userRepo:       userRepo,
		workRepo:       workRepo,
		engagementRepo: engagementRepo,
	}
}

func (s *userService) UpdateProfile(ctx context.Context, userID int64, params repository.UpdateProfileParams) error {
	// Report NotFound for a vanished user even when the patch is empty.
	if _, err := s.userRepo.GetUserByID(ctx, userID); err != nil {
		return err
	}

	return s.userRepo.UpdateProfile(ctx, userID, params)
}

// Dashboard composes four independent reads. There is no partial result: if
// any read fails the whole call fails.
func (s *userService) Dashboard(ctx context.Context, userID int64) (*models.Dashboard, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	recentViews, err := s.engagementRepo.GetRecentViews(ctx, userID, recentViewsLimit)
	if err != nil {
		return nil, err
	}

	works, err := s.workRepo.GetByAuthorID(ctx, userID)
	if err != nil {
		return nil, err
	}

	likedWorks, err := s.engagementRepo.GetLikedWorks(ctx, userID)
	if err != nil {
		return nil, err
	}

	myWorks := make([]models.OwnWork, 0, len(works))
	for _, work := range works {
		myWorks = append(myWorks, models.OwnWork{
			ID:          work.ID,
			Title:       work.Title,
			Image:       work.Image,
			Description: work.Description,
			Likes:       work.Likes,
		})
	}

	return &models.Dashboard{
		Profile: models.Profile{
			Username:     user.Username,
			Name:         user.Name,
			Age:          user.Age,
			ProfileImage: user.ProfileImage,
		},
		RecentViews: recentViews,
		MyWorks:     myWorks,
		LikedWorks:  likedWorks,
	}, nil
}
