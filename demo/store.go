package demo

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"
)

// Package demo is the in-memory stand-in for the social backend, mounted
// only when DEMO_MODE is on. Every operation sleeps an artificial latency
// and sending a message has a 70% chance of producing a canned reply after a
// further delay. Nothing here persists past the process.

var ErrThreadNotFound = errors.New("chat thread not found")
var ErrRequestNotFound = errors.New("friend request not found")

type Productivity struct {
	Score           int `json:"score"`
	ScreenTime      int `json:"screenTime"`
	ProductiveTime  int `json:"productiveTime"`
	DistractingTime int `json:"distractingTime"`
}

type Friend struct {
	ID           string       `json:"id"`
	DisplayName  string       `json:"displayName"`
	Email        string       `json:"email"`
	PhotoURL     string       `json:"photoURL,omitempty"`
	Status       string       `json:"status"`
	LastActive   time.Time    `json:"lastActive"`
	Productivity Productivity `json:"productivity"`
}

type FriendRequest struct {
	ID        string    `json:"id"`
	From      Friend    `json:"from"`
	To        string    `json:"to"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

type Group struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Members   []string  `json:"members"`
	CreatedAt time.Time `json:"createdAt"`
}

type ThreadMessage struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"senderId"`
	SenderName string    `json:"senderName"`
	Content    string    `json:"content"`
	Timestamp  time.Time `json:"timestamp"`
	IsRead     bool      `json:"isRead"`
}

type Thread struct {
	ID           string          `json:"id"`
	Participants []string        `json:"participants"`
	IsGroupChat  bool            `json:"isGroupChat"`
	GroupName    string          `json:"groupName,omitempty"`
	Messages     []ThreadMessage `json:"messages"`
	LastMessage  *ThreadMessage  `json:"lastMessage,omitempty"`
	UnreadCount  int             `json:"unreadCount"`
}

type Store struct {
	mu       sync.Mutex
	friends  []Friend
	requests []FriendRequest
	groups   []Group
	threads  []Thread

	minDelay   time.Duration
	maxDelay   time.Duration
	replyDelay time.Duration
	rng        *rand.Rand
}

// NewStore seeds the demo state. Latency bounds are configurable so tests
// can run without the artificial waits.
func NewStore(minDelay, maxDelay time.Duration) *Store {
	now := time.Now()
	return &Store{
		friends:    seedFriends(now),
		requests:   seedRequests(now),
		groups:     seedGroups(now),
		threads:    seedThreads(now),
		minDelay:   minDelay,
		maxDelay:   maxDelay,
		replyDelay: 3 * time.Second,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (s *Store) sleep() {
	if s.maxDelay <= 0 {
		return
	}
	span := s.maxDelay - s.minDelay
	d := s.minDelay
	if span > 0 {
		s.mu.Lock()
		d += time.Duration(s.rng.Int63n(int64(span)))
		s.mu.Unlock()
	}
	time.Sleep(d)
}

func (s *Store) Friends() []Friend {
	s.sleep()
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Friend, len(s.friends))
	copy(out, s.friends)
	return out
}

func (s *Store) FriendRequests() []FriendRequest {
	s.sleep()
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]FriendRequest, len(s.requests))
	copy(out, s.requests)
	return out
}

func (s *Store) SendFriendRequest(email string) (*FriendRequest, error) {
	s.sleep()
	if !strings.Contains(email, "@") {
		return nil, errors.New("invalid email address")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	req := FriendRequest{
		ID: fmt.Sprintf("req%d", time.Now().UnixNano()),
		From: Friend{
			ID:          "currentUser",
			DisplayName: "Current User",
			Email:       "current@example.com",
		},
		To:        email,
		Status:    "pending",
		CreatedAt: time.Now(),
	}
	s.requests = append(s.requests, req)
	return &req, nil
}

func (s *Store) AcceptFriendRequest(requestID string) (*Friend, error) {
	s.sleep()
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, req := range s.requests {
		if req.ID == requestID {
			friend := Friend{
				ID:          req.From.ID,
				DisplayName: req.From.DisplayName,
				Email:       req.From.Email,
				PhotoURL:    req.From.PhotoURL,
				Status:      "offline",
				LastActive:  time.Now(),
				Productivity: Productivity{
					Score:           60 + s.rng.Intn(30),
					ScreenTime:      300 + s.rng.Intn(200),
					ProductiveTime:  150 + s.rng.Intn(150),
					DistractingTime: 50 + s.rng.Intn(100),
				},
			}
			s.friends = append(s.friends, friend)
			s.requests = append(s.requests[:i], s.requests[i+1:]...)
			return &friend, nil
		}
	}
	return nil, ErrRequestNotFound
}

func (s *Store) Groups() []Group {
	s.sleep()
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Group, len(s.groups))
	copy(out, s.groups)
	return out
}

func (s *Store) CreateGroup(name string, memberIDs []string) *Group {
	s.sleep()
	s.mu.Lock()
	defer s.mu.Unlock()
	group := Group{
		ID:        fmt.Sprintf("group%d", time.Now().UnixNano()),
		Name:      name,
		Members:   append([]string{"currentUser"}, memberIDs...),
		CreatedAt: time.Now(),
	}
	s.groups = append(s.groups, group)
	return &group
}

func (s *Store) Threads() []Thread {
	s.sleep()
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Thread, len(s.threads))
	copy(out, s.threads)
	return out
}

func (s *Store) Thread(id string) (*Thread, error) {
	s.sleep()
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.threads {
		if s.threads[i].ID == id {
			t := s.threads[i]
			return &t, nil
		}
	}
	return nil, ErrThreadNotFound
}

func (s *Store) CreateThread(participantIDs []string, isGroup bool, groupName string) *Thread {
	s.sleep()
	s.mu.Lock()
	defer s.mu.Unlock()
	thread := Thread{
		ID:           fmt.Sprintf("chat%d", time.Now().UnixNano()),
		Participants: append([]string{"currentUser"}, participantIDs...),
		IsGroupChat:  isGroup,
		GroupName:    groupName,
		Messages:     []ThreadMessage{},
	}
	s.threads = append([]Thread{thread}, s.threads...)
	return &thread
}

// SendMessage appends the message and, with 70% probability, schedules a
// canned reply after the reply delay.
func (s *Store) SendMessage(threadID, content string) (*ThreadMessage, error) {
	s.sleep()
	s.mu.Lock()
	idx := s.threadIndex(threadID)
	if idx < 0 {
		s.mu.Unlock()
		return nil, ErrThreadNotFound
	}

	msg := ThreadMessage{
		ID:         fmt.Sprintf("msg%d", time.Now().UnixNano()),
		SenderID:   "currentUser",
		SenderName: "You",
		Content:    content,
		Timestamp:  time.Now(),
		IsRead:     true,
	}
	s.threads[idx].Messages = append(s.threads[idx].Messages, msg)
	s.threads[idx].LastMessage = &msg
	reply := s.rng.Float64() > 0.3
	s.mu.Unlock()

	if reply {
		go s.scheduleReply(threadID)
	}
	return &msg, nil
}

func (s *Store) MarkThreadRead(threadID string) error {
	s.sleep()
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.threadIndex(threadID)
	if idx < 0 {
		return ErrThreadNotFound
	}
	s.threads[idx].UnreadCount = 0
	for i := range s.threads[idx].Messages {
		s.threads[idx].Messages[i].IsRead = true
	}
	return nil
}

func (s *Store) scheduleReply(threadID string) {
	time.Sleep(s.replyDelay)
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.threadIndex(threadID)
	if idx < 0 {
		return
	}

	sender := "friend1"
	for _, p := range s.threads[idx].Participants {
		if p != "currentUser" {
			sender = p
			break
		}
	}
	senderName := "Group Member"
	if !s.threads[idx].IsGroupChat {
		for _, f := range s.friends {
			if f.ID == sender {
				senderName = f.DisplayName
				break
			}
		}
	}

	reply := ThreadMessage{
		ID:         fmt.Sprintf("msg%d", time.Now().UnixNano()),
		SenderID:   sender,
		SenderName: senderName,
		Content:    cannedReplies[s.rng.Intn(len(cannedReplies))],
		Timestamp:  time.Now(),
	}
	s.threads[idx].Messages = append(s.threads[idx].Messages, reply)
	s.threads[idx].LastMessage = &reply
	s.threads[idx].UnreadCount++
}

func (s *Store) threadIndex(id string) int {
	for i := range s.threads {
		if s.threads[i].ID == id {
			return i
		}
	}
	return -1
}
