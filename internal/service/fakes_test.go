package service

import (
	"context"
	"sort"
	"strings"

	"github.com/ilyahahaha/vneshtata-new/internal/models"
	"github.com/ilyahahaha/vneshtata-new/internal/repository"
)

// In-memory stores backing the service tests. They mirror the
// repository contracts, including the sentinel errors and the
// created/deleted booleans of the edge stores.

type fakeUserStore struct {
	users map[string]models.User

	createErr error
	updateErr error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]models.User)}
}

func (f *fakeUserStore) Create(_ context.Context, user models.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return repository.ErrDuplicate
		}
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return models.User{}, repository.ErrUserNotFound
}

func (f *fakeUserStore) GetByID(_ context.Context, id string) (models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return models.User{}, repository.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserStore) ListIDs(_ context.Context) ([]string, error) {
	ids := make([]string, 0, len(f.users))
	for id := range f.users {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func (f *fakeUserStore) Update(_ context.Context, id string, upd repository.UserUpdate) (models.User, error) {
	if f.updateErr != nil {
		return models.User{}, f.updateErr
	}
	user, ok := f.users[id]
	if !ok {
		return models.User{}, repository.ErrUserNotFound
	}
	if upd.NewID != id {
		if _, taken := f.users[upd.NewID]; taken {
			return models.User{}, repository.ErrDuplicate
		}
		delete(f.users, id)
		user.ID = upd.NewID
	}
	if upd.FirstName != nil {
		user.FirstName = *upd.FirstName
	}
	if upd.LastName != nil {
		user.LastName = *upd.LastName
	}
	if upd.Email != nil {
		for _, existing := range f.users {
			if existing.ID != id && strings.EqualFold(existing.Email, *upd.Email) {
				return models.User{}, repository.ErrDuplicate
			}
		}
		user.Email = *upd.Email
	}
	if upd.PasswordHash != nil {
		user.PasswordHash = upd.PasswordHash
	}
	f.users[user.ID] = user
	return user, nil
}

func (f *fakeUserStore) UpdatePicture(_ context.Context, id string, picture string) error {
	user, ok := f.users[id]
	if !ok {
		return repository.ErrUserNotFound
	}
	user.Picture = &picture
	f.users[id] = user
	return nil
}

func (f *fakeUserStore) ListPictures(_ context.Context) ([]string, error) {
	var pictures []string
	for _, user := range f.users {
		if user.Picture != nil {
			pictures = append(pictures, *user.Picture)
		}
	}
	return pictures, nil
}

type fakeProfileStore struct {
	profiles map[string]models.Profile
}

func newFakeProfileStore() *fakeProfileStore {
	return &fakeProfileStore{profiles: make(map[string]models.Profile)}
}

func (f *fakeProfileStore) GetByUser(_ context.Context, userID string) (models.Profile, error) {
	profile, ok := f.profiles[userID]
	if !ok {
		return models.Profile{}, repository.ErrProfileNotFound
	}
	return profile, nil
}

func (f *fakeProfileStore) Update(_ context.Context, userID string, upd repository.ProfileUpdate) (models.Profile, error) {
	profile, ok := f.profiles[userID]
	if !ok {
		return models.Profile{}, repository.ErrProfileNotFound
	}
	if upd.Status != nil {
		profile.Status = upd.Status
	}
	if upd.Position != nil {
		profile.Position = upd.Position
	}
	if upd.Company != nil {
		profile.Company = upd.Company
	}
	if upd.Country != nil {
		profile.Country = *upd.Country
	}
	if upd.Education != nil {
		profile.Education = upd.Education
	}
	if upd.About != nil {
		profile.About = upd.About
	}
	f.profiles[userID] = profile
	return profile, nil
}

type fakeEmploymentStore struct {
	employments map[string]models.Employment
	createErr   error
}

func newFakeEmploymentStore() *fakeEmploymentStore {
	return &fakeEmploymentStore{employments: make(map[string]models.Employment)}
}

func (f *fakeEmploymentStore) Create(_ context.Context, employment models.Employment) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.employments[employment.ID] = employment
	return nil
}

func (f *fakeEmploymentStore) ListByUser(_ context.Context, userID string) ([]models.Employment, error) {
	owned := make([]models.Employment, 0)
	for _, employment := range f.employments {
		if employment.UserID == userID {
			owned = append(owned, employment)
		}
	}
	sort.Slice(owned, func(i, j int) bool {
		return owned[i].EmployedOn.After(owned[j].EmployedOn)
	})
	return owned, nil
}

func (f *fakeEmploymentStore) DeleteOwned(_ context.Context, id string, ownerID string) error {
	employment, ok := f.employments[id]
	if !ok || employment.UserID != ownerID {
		return repository.ErrEmploymentNotFound
	}
	delete(f.employments, id)
	return nil
}

type followEdge struct {
	follower  string
	following string
}

type fakeFollowStore struct {
	edges     map[followEdge]bool
	users     *fakeUserStore
	createErr error
}

func newFakeFollowStore(users *fakeUserStore) *fakeFollowStore {
	return &fakeFollowStore{edges: make(map[followEdge]bool), users: users}
}

func (f *fakeFollowStore) Create(_ context.Context, followerID, followingID string) (bool, error) {
	if f.createErr != nil {
		return false, f.createErr
	}
	if f.users != nil {
		if _, ok := f.users.users[followingID]; !ok {
			return false, repository.ErrMissingReference
		}
	}
	edge := followEdge{follower: followerID, following: followingID}
	if f.edges[edge] {
		return false, nil
	}
	f.edges[edge] = true
	return true, nil
}

func (f *fakeFollowStore) Delete(_ context.Context, followerID, followingID string) (bool, error) {
	edge := followEdge{follower: followerID, following: followingID}
	if !f.edges[edge] {
		return false, nil
	}
	delete(f.edges, edge)
	return true, nil
}

func (f *fakeFollowStore) Exists(_ context.Context, followerID, followingID string) (bool, error) {
	return f.edges[followEdge{follower: followerID, following: followingID}], nil
}

func (f *fakeFollowStore) ListFollowers(_ context.Context, userID string) ([]models.UserSummary, error) {
	followers := make([]models.UserSummary, 0)
	for edge := range f.edges {
		if edge.following != userID {
			continue
		}
		summary := models.UserSummary{ID: edge.follower}
		if f.users != nil {
			if user, ok := f.users.users[edge.follower]; ok {
				summary.FirstName = user.FirstName
				summary.LastName = user.LastName
				summary.Picture = user.Picture
			}
		}
		followers = append(followers, summary)
	}
	sort.Slice(followers, func(i, j int) bool { return followers[i].ID < followers[j].ID })
	return followers, nil
}

type likeEdge struct {
	post string
	user string
}

type fakePostStore struct {
	posts    map[string]models.Post
	likes    map[likeEdge]bool
	comments []models.Comment
}

func newFakePostStore() *fakePostStore {
	return &fakePostStore{
		posts: make(map[string]models.Post),
		likes: make(map[likeEdge]bool),
	}
}

func (f *fakePostStore) Create(_ context.Context, post models.Post) error {
	f.posts[post.ID] = post
	return nil
}

func (f *fakePostStore) ListFeed(_ context.Context, viewerID string, skip, take int) ([]models.FeedPost, error) {
	posts := make([]models.FeedPost, 0)
	for _, post := range f.posts {
		posts = append(posts, models.FeedPost{
			Post:  post,
			Likes: []models.UserSummary{},
		})
	}
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	if skip >= len(posts) {
		return []models.FeedPost{}, nil
	}
	posts = posts[skip:]
	if take < len(posts) {
		posts = posts[:take]
	}
	return posts, nil
}

func (f *fakePostStore) CreateLike(_ context.Context, postID, userID string) (bool, error) {
	if _, ok := f.posts[postID]; !ok {
		return false, repository.ErrMissingReference
	}
	edge := likeEdge{post: postID, user: userID}
	if f.likes[edge] {
		return false, nil
	}
	f.likes[edge] = true
	return true, nil
}

func (f *fakePostStore) DeleteLike(_ context.Context, postID, userID string) (bool, error) {
	edge := likeEdge{post: postID, user: userID}
	if !f.likes[edge] {
		return false, nil
	}
	delete(f.likes, edge)
	return true, nil
}

func (f *fakePostStore) CountLikes(_ context.Context, postID string) (int, error) {
	count := 0
	for edge := range f.likes {
		if edge.post == postID {
			count++
		}
	}
	return count, nil
}

func (f *fakePostStore) CreateComment(_ context.Context, comment models.Comment) error {
	if _, ok := f.posts[comment.PostID]; !ok {
		return repository.ErrMissingReference
	}
	f.comments = append(f.comments, comment)
	return nil
}

func (f *fakePostStore) ListComments(_ context.Context, postID string) ([]models.PostComment, error) {
	comments := make([]models.PostComment, 0)
	for _, comment := range f.comments {
		if comment.PostID == postID {
			comments = append(comments, models.PostComment{Comment: comment})
		}
	}
	return comments, nil
}

type fakeMessageStore struct {
	messages  []models.Message
	users     *fakeUserStore
	createErr error
}

func newFakeMessageStore(users *fakeUserStore) *fakeMessageStore {
	return &fakeMessageStore{users: users}
}

func (f *fakeMessageStore) Create(_ context.Context, message models.Message) error {
	if f.createErr != nil {
		return f.createErr
	}
	if f.users != nil {
		if _, ok := f.users.users[message.ReceiverID]; !ok {
			return repository.ErrMissingReference
		}
	}
	f.messages = append(f.messages, message)
	return nil
}

func (f *fakeMessageStore) ListDialogs(_ context.Context, userID string) ([]models.Dialog, error) {
	latest := make(map[followEdge]models.Message)
	for _, message := range f.messages {
		if message.SenderID != userID && message.ReceiverID != userID {
			continue
		}
		pair := followEdge{follower: message.SenderID, following: message.ReceiverID}
		if existing, ok := latest[pair]; !ok || message.SentAt.After(existing.SentAt) {
			latest[pair] = message
		}
	}

	dialogs := make([]models.Dialog, 0, len(latest))
	for _, message := range latest {
		dialogs = append(dialogs, models.Dialog{
			Sender:   f.summary(message.SenderID),
			Receiver: f.summary(message.ReceiverID),
			Content:  message.Content,
			SentAt:   message.SentAt,
		})
	}
	sort.Slice(dialogs, func(i, j int) bool {
		return dialogs[i].SentAt.After(dialogs[j].SentAt)
	})
	return dialogs, nil
}

func (f *fakeMessageStore) ListBetween(_ context.Context, userID, counterpartID string) ([]models.ChatMessage, error) {
	messages := make([]models.ChatMessage, 0)
	for _, message := range f.messages {
		between := (message.SenderID == userID && message.ReceiverID == counterpartID) ||
			(message.SenderID == counterpartID && message.ReceiverID == userID)
		if !between {
			continue
		}
		messages = append(messages, models.ChatMessage{
			Sender:   f.summary(message.SenderID),
			Receiver: f.summary(message.ReceiverID),
			Content:  message.Content,
			SentAt:   message.SentAt,
		})
	}
	sort.Slice(messages, func(i, j int) bool {
		return messages[i].SentAt.Before(messages[j].SentAt)
	})
	return messages, nil
}

func (f *fakeMessageStore) summary(userID string) models.UserSummary {
	if f.users != nil {
		if user, ok := f.users.users[userID]; ok {
			return models.UserSummary{
				ID:        user.ID,
				FirstName: user.FirstName,
				LastName:  user.LastName,
				Picture:   user.Picture,
			}
		}
	}
	return models.UserSummary{ID: userID}
}
