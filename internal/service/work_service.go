package service

import (
	"context"

	"github.com/teamMongle/Mongle-Server/internal/apperrors"
	"github.com/teamMongle/Mongle-Server/internal/models"
	"github.com/teamMongle/Mongle-Server/internal/repository"
)

// bestWorksLimit caps the /best9 ranking.
const bestWorksLimit = 9

type WorkService interface {
	Create(ctx context.Context, authorID int64, params CreateWorkParams) (*models.Work, error)
	List(ctx context.Context) ([]models.Work, error)
	Best(ctx context.Context) ([]models.Work, error)
	Detail(ctx context.Context, workID int64, viewerID *int64) (*models.WorkDetail, error)
	Update(ctx context.Context, workID, actorID int64, params repository.UpdateWorkParams) error
	Delete(ctx context.Context, workID, actorID int64) error
	Like(ctx context.Context, workID, actorID int64) error
	WorksByAuthor(ctx context.Context, name string) (*models.AuthorWorks, error)
}

type CreateWorkParams struct {
	Title       string
	Content     string
	Category    string
	Image       string
	Description string
}

type workService struct {
	workRepo       repository.WorkRepository
	userRepo       repository.UserRepository
	episodeRepo    repository.EpisodeRepository
	engagementRepo repository.EngagementRepository
}

func NewWorkService(
	workRepo repository.WorkRepository,
	userRepo repository.UserRepository,
	episodeRepo repository.EpisodeRepository,
	engagementRepo repository.EngagementRepository,
) WorkService {
	return &workService{
		workRepo:       workRepo,
		userRepo:       userRepo,
		episodeRepo:    episodeRepo,
		engagementRepo: engagementRepo,
	}
}

// Create denormalizes the author's stored name onto the work record. A token
// whose user row no longer exists yields NotFound.
func (s *workService) Create(ctx context.Context, authorID int64, params CreateWorkParams) (*models.Work, error) {
	author, err := s.userRepo.GetUserByID(ctx, authorID)
	if err != nil {
		return nil, err
	}

	work := &models.Work{
		Title:       params.Title,
		Content:     params.Content,
		Category:    params.Category,
		Image:       params.Image,
		Description: params.Description,
		AuthorID:    authorID,
		AuthorName:  author.Name,
	}

	err = s.workRepo.Create(ctx, work)
	if err != nil {
		return nil, err
	}

	return work, nil
}

func (s *workService) List(ctx context.Context) ([]models.Work, error) {
	return s.workRepo.GetAll(ctx)
}

func (s *workService) Best(ctx context.Context) ([]models.Work, error) {
	return s.workRepo.GetTopByLikes(ctx, bestWorksLimit)
}

// Detail increments the view counter before loading the work, so the returned
// count already reflects this read. When the request carried a valid token
// the view is also recorded for the viewer's recent-views list.
func (s *workService) Detail(ctx context.Context, workID int64, viewerID *int64) (*models.WorkDetail, error) {
	if err := s.engagementRepo.IncrementViews(ctx, workID); err != nil {
		return nil, err
	}

	work, err := s.workRepo.GetByID(ctx, workID)
	if err != nil {
		return nil, err
	}

	if viewerID != nil {
		if err := s.engagementRepo.RecordView(ctx, *viewerID, workID); err != nil {
			return nil, err
		}
	}

	episodes, err := s.episodeRepo.GetByWorkID(ctx, workID)
	if err != nil {
		return nil, err
	}

	detail := &models.WorkDetail{Work: *work, Episodes: make([]models.EpisodeDetail, 0, len(episodes))}
	for _, episode := range episodes {
		comments, err := s.episodeRepo.GetCommentsByEpisodeID(ctx, episode.ID)
		if err != nil {
			return nil, err
		}
		detail.Episodes = append(detail.Episodes, models.EpisodeDetail{Episode: episode, Comments: comments})
	}

	return detail, nil
}

// Update goes through a single (id, author) match: a nonexistent work and a
// work owned by someone else both come back as Forbidden on this endpoint.
func (s *workService) Update(ctx context.Context, workID, actorID int64, params repository.UpdateWorkParams) error {
	return s.workRepo.UpdateOwned(ctx, workID, actorID, params)
}

// Delete, unlike Update, distinguishes the two failure modes: the work is
// loaded first (NotFound when absent) and only then checked for ownership.
func (s *workService) Delete(ctx context.Context, workID, actorID int64) error {
	work, err := s.workRepo.GetByID(ctx, workID)
	if err != nil {
		return err
	}

	if work.AuthorID != actorID {
		return apperrors.ErrForbidden
	}

	return s.workRepo.Delete(ctx, workID)
}

func (s *workService) Like(ctx context.Context, workID, actorID int64) error {
	return s.engagementRepo.Like(ctx, workID, actorID)
}

func (s *workService) WorksByAuthor(ctx context.Context, name string) (*models.AuthorWorks, error) {
	author, err := s.userRepo.GetUserByName(ctx, name)
	if err != nil {
		return nil, err
	}

	works, err := s.workRepo.GetByAuthorID(ctx, author.ID)
	if err != nil {
		return nil, err
	}

	result := &models.AuthorWorks{AuthorName: author.Name, Works: make([]models.AuthorWork, 0, len(works))}
	for _, work := range works {
		result.Works = append(result.Works, models.AuthorWork{
			ID:          work.ID,
			Title:       work.Title,
			Likes:       work.Likes,
			Description: work.Description,
			CoverImage:  work.Image,
		})
	}

	return result, nil
}
