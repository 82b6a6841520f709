package postapp

import (
	"context"
	"time"

	"socialfeed/internal/core/post"
	postPort "socialfeed/internal/ports/post"
	userPort "socialfeed/internal/ports/user"

	"github.com/gofrs/uuid"
	"github.com/graph-gophers/dataloader"
)

// userIndex نگاشت شناسه کاربر به ویژگی‌های نمایشی؛ کاربران ناموجود در آن نیستند
type userIndex map[uuid.UUID]*userPort.UserSummary

type loaderKey struct{}

// WithUserLoader یک loader کاربر برای کل درخواست در ctx قرار می‌دهد
func (s *PostService) WithUserLoader(ctx context.Context) context.Context {
	return context.WithValue(ctx, loaderKey{}, s.newUserLoader())
}

func (s *PostService) newUserLoader() *dataloader.Loader {
	return dataloader.NewBatchedLoader(s.batchUsers, dataloader.WithWait(time.Millisecond))
}

// userLoader loader درخواست جاری؛ بیرون از درخواست HTTP یک loader تازه ساخته می‌شود
func (s *PostService) userLoader(ctx context.Context) *dataloader.Loader {
	if l, ok := ctx.Value(loaderKey{}).(*dataloader.Loader); ok {
		return l
	}
	return s.newUserLoader()
}

// resolveUsers هر گروه شناسه با یک LoadMany جدا درخواست می‌شود و loader همه را در یک batch جمع می‌کند
func (s *PostService) resolveUsers(ctx context.Context, groups ...[]uuid.UUID) (userIndex, error) {
	loader := s.userLoader(ctx)

	thunks := make([]dataloader.ThunkMany, 0, len(groups))
	for _, ids := range groups {
		keys := make([]string, 0, len(ids))
		for _, id := range ids {
			if id != uuid.Nil {
				keys = append(keys, id.String())
			}
		}
		if len(keys) > 0 {
			thunks = append(thunks, loader.LoadMany(ctx, dataloader.NewKeysFromStrings(keys)))
		}
	}

	index := make(userIndex)
	for _, thunk := range thunks {
		values, errs := thunk()
		for _, err := range errs {
			if err != nil {
				return nil, err
			}
		}
		for _, v := range values {
			if summary, ok := v.(*userPort.UserSummary); ok && summary != nil {
				index[uuid.FromStringOrNil(summary.ID)] = summary
			}
		}
	}
	return index, nil
}

// batchUsers تابع batch برای dataloader؛ نتیجه‌ها به ترتیب کلیدها
func (s *PostService) batchUsers(ctx context.Context, keys dataloader.Keys) []*dataloader.Result {
	ids := make([]string, len(keys))
	for i, k := range keys {
		ids[i] = k.String()
	}

	results := make([]*dataloader.Result, len(keys))
	users, err := s.UserRepository.FindByIDs(ctx, ids)
	if err != nil {
		for i := range results {
			results[i] = &dataloader.Result{Error: err}
		}
		return results
	}

	byID := make(map[string]*userPort.UserSummary, len(users))
	for _, u := range users {
		byID[u.ID.String()] = userPort.ToSummary(u)
	}
	for i, id := range ids {
		var data *userPort.UserSummary
		if summary, ok := byID[id]; ok {
			data = summary
		}
		results[i] = &dataloader.Result{Data: data}
	}
	return results
}

func (ix userIndex) post(p *post.Post) *postPort.PostView {
	likes := make([]*userPort.UserSummary, 0, len(p.Likes))
	for _, id := range p.Likes {
		if u, ok := ix[id]; ok {
			likes = append(likes, u)
		}
	}
	return &postPort.PostView{
		ID:        p.ID.String(),
		User:      ix[p.UserID],
		Content:   p.Content,
		Image:     p.ImageURL,
		Likes:     likes,
		Comments:  ix.comments(p.Comments),
		CreatedAt: p.CreatedAt,
	}
}

// likedPost مانند post اما likes فقط شناسه‌ها هستند
func (ix userIndex) likedPost(p *post.Post) *postPort.LikedPostView {
	likes := make([]string, len(p.Likes))
	for i, id := range p.Likes {
		likes[i] = id.String()
	}
	return &postPort.LikedPostView{
		ID:        p.ID.String(),
		User:      ix[p.UserID],
		Content:   p.Content,
		Image:     p.ImageURL,
		Likes:     likes,
		Comments:  ix.comments(p.Comments),
		CreatedAt: p.CreatedAt,
	}
}

func (ix userIndex) comments(cs []post.Comment) []*postPort.CommentView {
	views := make([]*postPort.CommentView, len(cs))
	for i := range cs {
		views[i] = ix.comment(&cs[i])
	}
	return views
}

func (ix userIndex) comment(c *post.Comment) *postPort.CommentView {
	replies := make([]*postPort.ReplyView, len(c.Replies))
	for i := range c.Replies {
		replies[i] = ix.reply(&c.Replies[i])
	}
	return &postPort.CommentView{
		ID:        c.ID.String(),
		User:      ix[c.UserID],
		Text:      c.Text,
		Replies:   replies,
		CreatedAt: c.CreatedAt,
	}
}

func (ix userIndex) reply(r *post.Reply) *postPort.ReplyView {
	return &postPort.ReplyView{
		ID:        r.ID.String(),
		User:      ix[r.UserID],
		Text:      r.Text,
		CreatedAt: r.CreatedAt,
	}
}
