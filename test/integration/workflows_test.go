//go:build integration

package integration

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Title string `json:"title"`
}

// TestReadOnlyWorkflow walks boards, posts, tags and users without writing.
func TestReadOnlyWorkflow(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	runner := NewCommandRunner(config, t)

	// 1. Credentials verify against the API
	stdout, stderr, err := runner.Run("auth")
	require.NoError(t, err, "auth failed: %s", stderr)
	assert.Contains(t, stdout, "Authenticated")

	// 2. Boards
	var boards []record

	runner.RunJSON(&boards, "boards", "list")

	if len(boards) == 0 {
		t.Skip("account has no boards")
	}

	boardID := boards[0].ID

	// 3. One page of posts, then the same page in YAML
	var posts []record

	runner.RunJSON(&posts, "posts", "list", "--board-id", boardID, "--limit", "5")
	assert.LessOrEqual(t, len(posts), 5)

	stdout, stderr, err = runner.Run("posts", "list", "--board-id", boardID, "--limit", "5", "-o", "yaml")
	require.NoError(t, err, "yaml output failed: %s", stderr)

	if len(posts) > 0 {
		assert.Contains(t, stdout, "id: "+posts[0].ID)

		var post record

		runner.RunJSON(&post, "posts", "get", "--id", posts[0].ID)
		assert.Equal(t, posts[0].ID, post.ID)
	}

	// 4. Taxonomy
	var tags []record

	runner.RunJSON(&tags, "tags", "list", "--board-id", boardID)

	var categories []record

	runner.RunJSON(&categories, "categories", "list", "--board-id", boardID)

	// 5. Every user, across all cursor pages
	var users []record

	runner.RunJSON(&users, "users", "list")
	assert.NotEmpty(t, users)
}

// TestNotFoundExitCode checks the exit status of a lookup for a missing post.
func TestNotFoundExitCode(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	runner := NewCommandRunner(config, t)

	_, stderr, err := runner.Run("posts", "get", "--id", "000000000000000000000000")
	require.Error(t, err)

	if !strings.Contains(stderr, "API error") {
		assert.Contains(t, stderr, "Post not found.")
	}
}

// TestPostLifecycle creates, updates, comments on and deletes a post.
func TestPostLifecycle(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)
	config.SkipIfNoBoard(t)

	runner := NewCommandRunner(config, t)
	title := GenerateTestName("integration-post")

	// 1. Create
	var created record

	runner.RunJSON(&created, "posts", "create",
		"--board-id", config.BoardID,
		"--author-id", config.AuthorID,
		"--title", title,
		"--details", "Created by the canny integration tests")
	require.NotEmpty(t, created.ID)

	defer runner.CleanupPost(created.ID)

	// 2. Read back
	var post record

	runner.RunJSON(&post, "posts", "get", "--id", created.ID)
	assert.Equal(t, title, post.Title)

	// 3. Update
	stdout, stderr, err := runner.Run("posts", "update", "--id", created.ID, "--title", title+"-updated")
	require.NoError(t, err, "update failed: %s", stderr)
	assert.Contains(t, stdout, "Post updated.")

	// 4. Comment
	var comment record

	runner.RunJSON(&comment, "comments", "create",
		"--post-id", created.ID,
		"--author-id", config.AuthorID,
		"--value", "Integration test comment",
		"--internal")
	assert.NotEmpty(t, comment.ID)

	// 5. Status change
	stdout, stderr, err = runner.Run("posts", "status",
		"--id", created.ID,
		"--changer-id", config.AuthorID,
		"--status", "planned")
	require.NoError(t, err, "status change failed: %s", stderr)
	assert.Contains(t, stdout, "planned")
}
