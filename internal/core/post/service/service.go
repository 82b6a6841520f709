package postapp

import (
	"context"
	"errors"
	"strings"
	"time"

	"socialfeed/internal/core/apperr"
	postEntity "socialfeed/internal/core/post"
	"socialfeed/internal/ports"
	"socialfeed/internal/ports/media"
	postPort "socialfeed/internal/ports/post"
	userPort "socialfeed/internal/ports/user"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"
)

// ImageFolder پوشه تصاویر پست‌ها در سرویس میزبانی تصویر
const ImageFolder = "posts"

type PostService struct {
	PostRepository postPort.PostRepository
	UserRepository userPort.UserRepository // برای denormalize کردن کاربران
	ImageStore     media.ImageStore
	logger         *zap.Logger
	now            func() time.Time
}

func NewPostService(
	postRepo postPort.PostRepository,
	userRepo userPort.UserRepository,
	images media.ImageStore,
	logger *zap.Logger,
) *PostService {
	return &PostService{
		PostRepository: postRepo,
		UserRepository: userRepo,
		ImageStore:     images,
		logger:         logger,
		now:            time.Now,
	}
}

// CreatePost ایجاد پست جدید برای مالک؛ متن یا تصویر الزامی است
func (s *PostService) CreatePost(ctx context.Context, userID, content string, img *media.Image) (*postPort.PostView, error) {
	content = strings.TrimSpace(content)
	if content == "" && img == nil {
		return nil, apperr.Validation("Post content or image is required")
	}

	uid, err := uuid.FromString(userID)
	if err != nil {
		return nil, apperr.NotFound("User not found")
	}
	if _, err := s.UserRepository.FindByID(ctx, userID); err != nil {
		return nil, notFoundOr(err, "User not found")
	}

	post := postEntity.New(uid, content, s.now())

	if img != nil {
		asset, err := s.ImageStore.Upload(ctx, ImageFolder, img)
		if err != nil {
			s.logger.Error("Post image upload failed", zap.String("userID", userID), zap.Error(err))
			return nil, apperr.Upload(err, "Image upload failed")
		}
		post.ImageURL = asset.URL
		post.ImagePublicID = asset.PublicID
	}

	created, err := s.PostRepository.Create(ctx, post)
	if err != nil {
		s.destroyImage(ctx, post.ImagePublicID)
		return nil, apperr.Wrap(err)
	}
	s.logger.Info("Created post", zap.String("postID", created.ID.String()), zap.String("userID", userID))

	users, err := s.resolveUsers(ctx, created.UserIDs())
	if err != nil {
		return nil, apperr.Wrap(err)
	}
	return users.post(created), nil
}

// ListPosts همه پست‌ها، جدیدترین اول، به صورت کامل denormalized
func (s *PostService) ListPosts(ctx context.Context) ([]*postPort.PostView, error) {
	posts, err := s.PostRepository.List(ctx)
	if err != nil {
		return nil, apperr.Wrap(err)
	}

	groups := make([][]uuid.UUID, len(posts))
	for i, p := range posts {
		groups[i] = p.UserIDs()
	}
	users, err := s.resolveUsers(ctx, groups...)
	if err != nil {
		return nil, apperr.Wrap(err)
	}

	views := make([]*postPort.PostView, len(posts))
	for i, p := range posts {
		views[i] = users.post(p)
	}
	return views, nil
}

// ToggleLike لایک کاربر را اضافه یا حذف می‌کند.
// بین خواندن و نوشتن قفلی وجود ندارد؛ دو toggle هم‌زمان ممکن است یکدیگر را بازنویسی کنند.
func (s *PostService) ToggleLike(ctx context.Context, postID, userID string) (*postPort.LikedPostView, error) {
	uid, err := parseUserID(userID)
	if err != nil {
		return nil, err
	}
	post, err := s.findPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	liked := post.ToggleLike(uid)
	if err := s.PostRepository.Save(ctx, post); err != nil {
		return nil, notFoundOr(err, "Post not found")
	}
	s.logger.Debug("Toggled like", zap.String("postID", postID), zap.String("userID", userID), zap.Bool("liked", liked))

	users, err := s.resolveUsers(ctx, post.UserIDs())
	if err != nil {
		return nil, apperr.Wrap(err)
	}
	return users.likedPost(post), nil
}

// AddComment کامنت جدید را اضافه کرده و فقط همان کامنت را برمی‌گرداند
func (s *PostService) AddComment(ctx context.Context, postID, userID, text string) (*postPort.CommentView, error) {
	uid, err := parseUserID(userID)
	if err != nil {
		return nil, err
	}
	post, err := s.findPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, apperr.Validation("Comment text is required")
	}

	idx := post.AddComment(uid, text, s.now())
	if err := s.PostRepository.Save(ctx, post); err != nil {
		return nil, notFoundOr(err, "Post not found")
	}

	comment := &post.Comments[idx]
	users, err := s.resolveUsers(ctx, []uuid.UUID{comment.UserID})
	if err != nil {
		return nil, apperr.Wrap(err)
	}
	return users.comment(comment), nil
}

// AddReply پاسخ را به کامنت اضافه کرده و فقط همان پاسخ را برمی‌گرداند
func (s *PostService) AddReply(ctx context.Context, postID, commentID, userID, text string) (*postPort.ReplyView, error) {
	uid, err := parseUserID(userID)
	if err != nil {
		return nil, err
	}
	post, err := s.findPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	cid, err := uuid.FromString(commentID)
	if err != nil {
		return nil, apperr.NotFound("Comment not found")
	}
	ci := post.CommentIndex(cid)
	if ci < 0 {
		return nil, apperr.NotFound("Comment not found")
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, apperr.Validation("Reply text is required")
	}

	ri := post.AddReply(ci, uid, text, s.now())
	if err := s.PostRepository.Save(ctx, post); err != nil {
		return nil, notFoundOr(err, "Post not found")
	}

	reply := &post.Comments[ci].Replies[ri]
	users, err := s.resolveUsers(ctx, []uuid.UUID{reply.UserID})
	if err != nil {
		return nil, apperr.Wrap(err)
	}
	return users.reply(reply), nil
}

// DeletePost فقط مالک می‌تواند پست را حذف کند؛ کامنت‌ها و پاسخ‌ها همراه سند حذف می‌شوند
func (s *PostService) DeletePost(ctx context.Context, postID, requesterID string) error {
	post, err := s.findPost(ctx, postID)
	if err != nil {
		return err
	}
	if !post.IsOwnedBy(uuid.FromStringOrNil(requesterID)) {
		return apperr.Authorization("Not authorized to delete this post")
	}

	if err := s.PostRepository.Delete(ctx, postID); err != nil {
		return notFoundOr(err, "Post not found")
	}
	s.destroyImage(ctx, post.ImagePublicID)

	s.logger.Info("Deleted post", zap.String("postID", postID), zap.String("userID", requesterID))
	return nil
}

func (s *PostService) findPost(ctx context.Context, postID string) (*postEntity.Post, error) {
	if _, err := uuid.FromString(postID); err != nil {
		return nil, apperr.NotFound("Post not found")
	}
	post, err := s.PostRepository.FindByID(ctx, postID)
	if err != nil {
		return nil, notFoundOr(err, "Post not found")
	}
	return post, nil
}

// destroyImage حذف تصویر به صورت best-effort؛ خطا فقط لاگ می‌شود
func (s *PostService) destroyImage(ctx context.Context, publicID string) {
	if publicID == "" {
		return
	}
	if err := s.ImageStore.Destroy(ctx, publicID); err != nil {
		s.logger.Warn("Could not destroy post image", zap.String("publicID", publicID), zap.Error(err))
	}
}

func parseUserID(userID string) (uuid.UUID, error) {
	uid, err := uuid.FromString(userID)
	if err != nil {
		return uuid.Nil, apperr.Validation("invalid user id")
	}
	return uid, nil
}

func notFoundOr(err error, message string) error {
	if errors.Is(err, ports.ErrNotFound) {
		return apperr.NotFound("%s", message)
	}
	return apperr.Wrap(err)
}
