package demo

import "time"

func seedFriends(now time.Time) []Friend {
	return []Friend{
		{
			ID:          "friend1",
			DisplayName: "Alex Johnson",
			Email:       "alex@example.com",
			Status:      "online",
			LastActive:  now,
			Productivity: Productivity{
				Score:           82,
				ScreenTime:      410,
				ProductiveTime:  280,
				DistractingTime: 130,
			},
		},
		{
			ID:          "friend2",
			DisplayName: "Sam Taylor",
			Email:       "sam@example.com",
			Status:      "away",
			LastActive:  now.Add(-35 * time.Minute),
			Productivity: Productivity{
				Score:           67,
				ScreenTime:      365,
				ProductiveTime:  205,
				DistractingTime: 160,
			},
		},
		{
			ID:          "friend3",
			DisplayName: "Jordan Lee",
			Email:       "jordan@example.com",
			Status:      "offline",
			LastActive:  now.Add(-6 * time.Hour),
			Productivity: Productivity{
				Score:           74,
				ScreenTime:      330,
				ProductiveTime:  240,
				DistractingTime: 90,
			},
		},
	}
}

func seedRequests(now time.Time) []FriendRequest {
	return []FriendRequest{
		{
			ID: "req1",
			From: Friend{
				ID:          "friend4",
				DisplayName: "Casey Morgan",
				Email:       "casey@example.com",
			},
			To:        "currentUser",
			Status:    "pending",
			CreatedAt: now.Add(-2 * time.Hour),
		},
	}
}

func seedThreads(now time.Time) []Thread {
	firstMsg := ThreadMessage{
		ID:         "msg1",
		SenderID:   "friend1",
		SenderName: "Alex Johnson",
		Content:    "Hey, how's your focus week going?",
		Timestamp:  now.Add(-50 * time.Minute),
	}
	groupMsg := ThreadMessage{
		ID:         "msg2",
		SenderID:   "friend2",
		SenderName: "Sam Taylor",
		Content:    "Anyone up for a study session tonight?",
		Timestamp:  now.Add(-3 * time.Hour),
	}
	return []Thread{
		{
			ID:           "chat1",
			Participants: []string{"currentUser", "friend1"},
			Messages:     []ThreadMessage{firstMsg},
			LastMessage:  &firstMsg,
			UnreadCount:  1,
		},
		{
			ID:           "chat2",
			Participants: []string{"currentUser", "friend1", "friend2"},
			IsGroupChat:  true,
			GroupName:    "Focus Squad",
			Messages:     []ThreadMessage{groupMsg},
			LastMessage:  &groupMsg,
			UnreadCount:  1,
		},
	}
}

func seedGroups(now time.Time) []Group {
	return []Group{
		{
			ID:        "group1",
			Name:      "Focus Squad",
			Members:   []string{"currentUser", "friend1", "friend2"},
			CreatedAt: now.Add(-72 * time.Hour),
		},
	}
}

var cannedReplies = []string{
	"Nice, keep it up!",
	"I just hit a 2-hour deep work streak.",
	"Let's compare screen time later today.",
	"Taking a break, back in 10.",
	"Did you finish the timetable for tomorrow?",
	"My productivity score finally went up this week.",
}
