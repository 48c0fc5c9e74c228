package social

import "sort"

// Stats summarizes a network.
type Stats struct {
	TotalUsers      int            `json:"total_users"`
	TotalPosts      int            `json:"total_posts"`
	TotalFollowers  int            `json:"total_followers"`
	TotalFollowings int            `json:"total_followings"`
	AvgPosts        float64        `json:"avg_posts"`
	AvgFollowers    float64        `json:"avg_followers"`
	TopicCounts     map[string]int `json:"topic_counts"`
	MostFollowed    string         `json:"most_followed,omitempty"`
}

// Stats computes aggregate counts over the network. The most-followed user
// is the one with the largest follower list; ties resolve to the lexically
// smallest id so the result is deterministic.
func (n *Network) Stats() Stats {
	s := Stats{TopicCounts: make(map[string]int)}
	followers := make(map[string]int)

	for _, user := range n.Users {
		s.TotalUsers++
		s.TotalPosts += len(user.Posts)
		s.TotalFollowers += len(user.Followers)
		s.TotalFollowings += len(user.Followings)

		for _, post := range user.Posts {
			for _, topic := range post.Topics {
				s.TopicCounts[topic]++
			}
		}
		if user.ID != "" {
			followers[user.ID] += len(user.Followers)
		}
	}

	if s.TotalUsers > 0 {
		s.AvgPosts = float64(s.TotalPosts) / float64(s.TotalUsers)
		s.AvgFollowers = float64(s.TotalFollowers) / float64(s.TotalUsers)
	}

	ids := make([]string, 0, len(followers))
	for id := range followers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	best := 0
	for _, id := range ids {
		if followers[id] > best {
			best = followers[id]
			s.MostFollowed = id
		}
	}

	return s
}
