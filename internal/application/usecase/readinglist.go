package usecase

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tesso57/readmode/internal/domain/readerbar"
	"github.com/tesso57/readmode/internal/domain/readinglist"
)

var (
	// ErrNotInReadingList is returned when marking an article that was never saved.
	ErrNotInReadingList = errors.New("article is not in the reading list")
	// ErrNotListAction is returned when Apply receives a kind that is not a reading-list action.
	ErrNotListAction = errors.New("not a reading list action")
)

// ReadingListRepository abstracts reading list persistence.
type ReadingListRepository interface {
	Get(url string) (*readinglist.Item, error)
	Upsert(item readinglist.Item) error
	Delete(url string) error
	SetUnread(url string, unread bool) error
	List() ([]readinglist.Item, error)
}

// ReadingListService coordinates reading list changes requested from the reader bar.
type ReadingListService struct {
	Repo ReadingListRepository
	Now  func() time.Time
}

// NewReadingListService constructs a ReadingListService.
func NewReadingListService(repo ReadingListRepository, now func() time.Time) ReadingListService {
	return ReadingListService{Repo: repo, Now: now}
}

// Status returns the reader bar flags for url.
func (s ReadingListService) Status(url string) (unread, added bool, err error) {
	item, err := s.Repo.Get(url)
	if err != nil {
		return true, false, err
	}
	unread, added = readinglist.Status(item)
	return unread, added, nil
}

// Add saves an article as unread. Adding an existing article keeps its state.
func (s ReadingListService) Add(url, title string) error {
	url = strings.TrimSpace(url)
	if url == "" {
		return errors.New("article url is empty")
	}
	existing, err := s.Repo.Get(url)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	return s.Repo.Upsert(readinglist.Item{
		URL:     url,
		Title:   title,
		Unread:  true,
		AddedAt: s.now(),
	})
}

// Remove deletes an article from the reading list.
func (s ReadingListService) Remove(url string) error {
	return s.Repo.Delete(url)
}

// MarkRead marks a saved article as read.
func (s ReadingListService) MarkRead(url string) error {
	return s.setUnread(url, false)
}

// MarkUnread marks a saved article as unread.
func (s ReadingListService) MarkUnread(url string) error {
	return s.setUnread(url, true)
}

// List returns every saved article.
func (s ReadingListService) List() ([]readinglist.Item, error) {
	return s.Repo.List()
}

// Import saves articles not yet in the list and returns how many were added.
func (s ReadingListService) Import(items []readinglist.Item) (int, error) {
	added := 0
	for _, item := range items {
		url := strings.TrimSpace(item.URL)
		if url == "" {
			continue
		}
		existing, err := s.Repo.Get(url)
		if err != nil {
			return added, err
		}
		if existing != nil {
			continue
		}
		item.URL = url
		item.Unread = true
		if item.AddedAt.IsZero() {
			item.AddedAt = s.now()
		}
		if err := s.Repo.Upsert(item); err != nil {
			return added, err
		}
		added++
	}
	return added, nil
}

// Apply performs the reading list change a reader bar notification asks for.
func (s ReadingListService) Apply(kind readerbar.ButtonKind, url, title string) error {
	switch kind {
	case readerbar.MarkAsRead:
		return s.MarkRead(url)
	case readerbar.MarkAsUnread:
		return s.MarkUnread(url)
	case readerbar.AddToReadingList:
		return s.Add(url, title)
	case readerbar.RemoveFromReadingList:
		return s.Remove(url)
	default:
		return fmt.Errorf("%s: %w", kind, ErrNotListAction)
	}
}

func (s ReadingListService) setUnread(url string, unread bool) error {
	existing, err := s.Repo.Get(url)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("%s: %w", url, ErrNotInReadingList)
	}
	return s.Repo.SetUnread(url, unread)
}

func (s ReadingListService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
