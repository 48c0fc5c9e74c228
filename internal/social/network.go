package social

import (
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
	"github.com/pkg/errors"
)

// Network is the parsed social graph of one document.
type Network struct {
	Users []User `json:"users"`
}

// User is one user record. The id comes from the element's id attribute
// when present, otherwise from its <id> child.
type User struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Posts      []Post   `json:"posts"`
	Followers  []string `json:"followers"`
	Followings []string `json:"followings"`
}

// Post is one post with its topic list.
type Post struct {
	Body   string   `json:"content"`
	Topics []string `json:"topics"`
}

var (
	xpUsers        = xpath.MustCompile("//user")
	xpUserID       = xpath.MustCompile("./id")
	xpUserName     = xpath.MustCompile("./name")
	xpUserPosts    = xpath.MustCompile(".//post")
	xpPostBody     = xpath.MustCompile("./body")
	xpPostTopics   = xpath.MustCompile(".//topics/topic")
	xpFollowerIDs  = xpath.MustCompile("./followers/follower/id")
	xpFollowingIDs = xpath.MustCompile("./followings/following/id")
)

// Parse builds the network model from raw document text.
func Parse(content string) (*Network, error) {
	doc, err := xmlquery.Parse(strings.NewReader(content))
	if err != nil {
		return nil, errors.Wrap(err, "parse document")
	}

	network := &Network{}
	for _, node := range xmlquery.QuerySelectorAll(doc, xpUsers) {
		network.Users = append(network.Users, parseUser(node))
	}

	return network, nil
}

func parseUser(node *xmlquery.Node) User {
	user := User{
		ID:         node.SelectAttr("id"),
		Posts:      []Post{},
		Followers:  []string{},
		Followings: []string{},
	}

	if user.ID == "" {
		if id := xmlquery.QuerySelector(node, xpUserID); id != nil {
			user.ID = strings.TrimSpace(id.InnerText())
		}
	}
	if name := xmlquery.QuerySelector(node, xpUserName); name != nil {
		user.Name = strings.TrimSpace(name.InnerText())
	}

	for _, post := range xmlquery.QuerySelectorAll(node, xpUserPosts) {
		user.Posts = append(user.Posts, parsePost(post))
	}
	user.Followers = idList(node, xpFollowerIDs)
	user.Followings = idList(node, xpFollowingIDs)

	return user
}

func parsePost(node *xmlquery.Node) Post {
	post := Post{Topics: []string{}}

	if body := xmlquery.QuerySelector(node, xpPostBody); body != nil {
		post.Body = strings.TrimSpace(body.InnerText())
	}
	for _, topic := range xmlquery.QuerySelectorAll(node, xpPostTopics) {
		if text := strings.TrimSpace(topic.InnerText()); text != "" {
			post.Topics = append(post.Topics, text)
		}
	}

	return post
}

func idList(node *xmlquery.Node, expr *xpath.Expr) []string {
	ids := []string{}
	for _, id := range xmlquery.QuerySelectorAll(node, expr) {
		if text := strings.TrimSpace(id.InnerText()); text != "" {
			ids = append(ids, text)
		}
	}
	return ids
}
