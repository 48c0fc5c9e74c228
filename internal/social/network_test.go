package social

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleNetwork = `<users>
    <user>
        <id>1</id>
        <name>Ahmed Ali</name>
        <posts>
            <post>
                <body>Solar panels are getting cheap</body>
                <topics>
                    <topic>economy</topic>
                    <topic>solar_energy</topic>
                </topics>
            </post>
            <post>
                <body>Interest rates again</body>
                <topics>
                    <topic>economy</topic>
                </topics>
            </post>
        </posts>
        <followers>
            <follower><id>2</id></follower>
            <follower><id>3</id></follower>
        </followers>
        <followings>
            <following><id>2</id></following>
        </followings>
    </user>
    <user>
        <id>2</id>
        <name>Yasser Ahmed</name>
        <posts>
            <post>
                <body>Match day</body>
                <topics>
                    <topic>sports</topic>
                </topics>
            </post>
        </posts>
        <followers>
            <follower><id>1</id></follower>
        </followers>
    </user>
    <user>
        <id>3</id>
        <name>Mohamed Sherif</name>
    </user>
</users>`

func TestParseNetwork(t *testing.T) {
	network, err := Parse(sampleNetwork)
	require.NoError(t, err)
	require.Len(t, network.Users, 3)

	first := network.Users[0]
	assert.Equal(t, "1", first.ID)
	assert.Equal(t, "Ahmed Ali", first.Name)
	require.Len(t, first.Posts, 2)
	assert.Equal(t, "Solar panels are getting cheap", first.Posts[0].Body)
	assert.Equal(t, []string{"economy", "solar_energy"}, first.Posts[0].Topics)
	assert.Equal(t, []string{"2", "3"}, first.Followers)
	assert.Equal(t, []string{"2"}, first.Followings)

	third := network.Users[2]
	assert.Equal(t, "3", third.ID)
	assert.Empty(t, third.Posts)
	assert.Empty(t, third.Followers)
}

func TestParseIDFromAttribute(t *testing.T) {
	network, err := Parse(`<users><user id="42"><name>Attr User</name></user></users>`)
	require.NoError(t, err)

	require.Len(t, network.Users, 1)
	assert.Equal(t, "42", network.Users[0].ID)
}

func TestParseEmptyDocument(t *testing.T) {
	network, err := Parse("<users></users>")
	require.NoError(t, err)

	assert.Empty(t, network.Users)
}

func TestStats(t *testing.T) {
	network, err := Parse(sampleNetwork)
	require.NoError(t, err)

	stats := network.Stats()

	assert.Equal(t, 3, stats.TotalUsers)
	assert.Equal(t, 3, stats.TotalPosts)
	assert.Equal(t, 3, stats.TotalFollowers)
	assert.Equal(t, 1, stats.TotalFollowings)
	assert.InDelta(t, 1.0, stats.AvgPosts, 0.001)
	assert.InDelta(t, 1.0, stats.AvgFollowers, 0.001)
	assert.Equal(t, 2, stats.TopicCounts["economy"])
	assert.Equal(t, 1, stats.TopicCounts["sports"])
	assert.Equal(t, "1", stats.MostFollowed)
}

func TestStatsEmptyNetwork(t *testing.T) {
	stats := (&Network{}).Stats()

	assert.Equal(t, 0, stats.TotalUsers)
	assert.Zero(t, stats.AvgPosts)
	assert.Empty(t, stats.MostFollowed)
}

func TestExportJSON(t *testing.T) {
	network, err := Parse(sampleNetwork)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, network.ExportJSON(&buf))

	var decoded struct {
		Users []struct {
			ID        string   `json:"id"`
			Name      string   `json:"name"`
			Followers []string `json:"followers"`
		} `json:"users"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	require.Len(t, decoded.Users, 3)
	assert.Equal(t, "1", decoded.Users[0].ID)
	assert.Equal(t, "Ahmed Ali", decoded.Users[0].Name)
	assert.Equal(t, []string{"2", "3"}, decoded.Users[0].Followers)
}

func TestExportJSONSkipsUsersWithoutID(t *testing.T) {
	network, err := Parse("<users><user><name>No ID</name></user></users>")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, network.ExportJSON(&buf))

	assert.Contains(t, buf.String(), `"users": []`)
}

func TestSearchWord(t *testing.T) {
	network, err := Parse(sampleNetwork)
	require.NoError(t, err)

	matches := network.SearchWord("solar")
	require.Len(t, matches, 1)
	assert.Equal(t, "Ahmed Ali", matches[0].UserName)
	assert.Contains(t, matches[0].Body, "Solar panels")

	assert.Empty(t, network.SearchWord("nonexistent"))
	assert.Empty(t, network.SearchWord(""))
}

func TestSearchTopic(t *testing.T) {
	network, err := Parse(sampleNetwork)
	require.NoError(t, err)

	matches := network.SearchTopic("economy")
	require.Len(t, matches, 2)
	assert.Equal(t, "1", matches[0].UserID)

	assert.Empty(t, network.SearchTopic("music"))
}
