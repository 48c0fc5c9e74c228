package social

import "strings"

// Match is one post found by a search, paired with its owner.
type Match struct {
	UserID   string `json:"user_id"`
	UserName string `json:"user_name"`
	Body     string `json:"body"`
}

// SearchWord returns every post whose body contains the word,
// case-insensitively.
func (n *Network) SearchWord(word string) []Match {
	if word == "" {
		return nil
	}
	needle := strings.ToLower(word)
	return n.searchPosts(func(p Post) bool {
		return strings.Contains(strings.ToLower(p.Body), needle)
	})
}

// SearchTopic returns every post tagged with the topic (exact match after
// trimming, case-insensitive).
func (n *Network) SearchTopic(topic string) []Match {
	if topic == "" {
		return nil
	}
	needle := strings.ToLower(strings.TrimSpace(topic))
	return n.searchPosts(func(p Post) bool {
		for _, t := range p.Topics {
			if strings.ToLower(t) == needle {
				return true
			}
		}
		return false
	})
}

func (n *Network) searchPosts(match func(Post) bool) []Match {
	var found []Match
	for _, user := range n.Users {
		for _, post := range user.Posts {
			if match(post) {
				found = append(found, Match{
					UserID:   user.ID,
					UserName: user.Name,
					Body:     post.Body,
				})
			}
		}
	}
	return found
}
