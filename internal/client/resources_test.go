package client

import (
	"context"
	"testing"

	"github.com/fivetwenty-io/canny-cli/pkg/canny"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentsClient(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, map[string]testResponse{
		"/api/v1/comments/list":     {Body: `{"hasMore":false,"comments":[{"id":"c1","value":"+1","created":"2024-01-01"}]}`},
		"/api/v1/comments/retrieve": {Body: `{"comment":{"id":"c1","value":"+1","created":"2024-01-01"}}`},
		"/api/v1/comments/create":   {Body: `{"id":"c2"}`},
		"/api/v1/comments/delete":   {Body: `"ok"`},
	})
	comments := NewTestClient(t, srv).Comments()
	ctx := context.Background()

	page, err := comments.List(ctx, &canny.CommentListParams{PostID: canny.String("p1"), Skip: canny.Int(20)})
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
	assert.Equal(t, 30, page.NextSkip())
	assert.ElementsMatch(t, []string{"apiKey", "postID", "limit", "skip"}, keys(srv.LastBody(t)))

	comment, err := comments.Retrieve(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "+1", comment.Value)

	id, err := comments.Create(ctx, &canny.CommentCreateRequest{
		PostID:             "p1",
		AuthorID:           "u1",
		Value:              "Thanks",
		Internal:           canny.Bool(true),
		ShouldNotifyVoters: canny.Bool(false),
	})
	require.NoError(t, err)
	assert.Equal(t, "c2", id)
	assert.ElementsMatch(t, []string{"apiKey", "postID", "authorID", "value", "internal"}, keys(srv.LastBody(t)))

	require.NoError(t, comments.Delete(ctx, "c2"))
	assert.Equal(t, "c2", srv.LastBody(t)["commentID"])
}

func TestCategoriesClient(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, map[string]testResponse{
		"/api/v1/categories/list":     {Body: `{"hasMore":false,"categories":[{"id":"cat1","name":"UX"}]}`},
		"/api/v1/categories/retrieve": {Body: `{"category":null}`},
		"/api/v1/categories/create":   {Body: `{"id":"cat2"}`},
		"/api/v1/categories/delete":   {Body: `"ok"`},
	})
	categories := NewTestClient(t, srv).Categories()
	ctx := context.Background()

	page, err := categories.List(ctx, &canny.CategoryListParams{BoardID: "b1"})
	require.NoError(t, err)
	assert.Equal(t, 100, page.Limit)
	assert.InDelta(t, 100, srv.LastBody(t)["limit"], 0)

	category, err := categories.Retrieve(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, category)

	id, err := categories.Create(ctx, &canny.CategoryCreateRequest{BoardID: "b1", Name: "Mobile", SubscribeAdmins: true})
	require.NoError(t, err)
	assert.Equal(t, "cat2", id)
	assert.Equal(t, true, srv.LastBody(t)["subscribeAdmins"])
	assert.NotContains(t, keys(srv.LastBody(t)), "parentID")

	require.NoError(t, categories.Delete(ctx, "cat2"))
	assert.Equal(t, "cat2", srv.LastBody(t)["categoryID"])
}

func TestBoardsClient(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, map[string]testResponse{
		"/api/v1/boards/list":     {Body: `{}`},
		"/api/v1/boards/retrieve": {Body: `{"board":{"id":"b1","name":"Features"}}`},
		"/api/v1/boards/create":   {Body: `{"id":"b2"}`},
		"/api/v1/boards/delete":   {Body: `"ok"`},
	})
	boards := NewTestClient(t, srv).Boards()
	ctx := context.Background()

	list, err := boards.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
	assert.ElementsMatch(t, []string{"apiKey"}, keys(srv.LastBody(t)))

	board, err := boards.Retrieve(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, "Features", board.Name)

	id, err := boards.Create(ctx, "Bugs")
	require.NoError(t, err)
	assert.Equal(t, "b2", id)

	require.NoError(t, boards.Delete(ctx, "b2"))
}

func TestTagsClient(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, map[string]testResponse{
		"/api/v1/tags/list":   {Body: `{"hasMore":true,"tags":[{"id":"t1","name":"ios"}]}`},
		"/api/v1/tags/create": {Body: `{"id":"t2"}`},
		"/api/v1/tags/delete": {Body: `"ok"`},
	})
	tags := NewTestClient(t, srv).Tags()
	ctx := context.Background()

	page, err := tags.List(ctx, &canny.TagListParams{BoardID: "b1", Limit: canny.Int(1)})
	require.NoError(t, err)
	assert.True(t, page.HasMore)
	assert.Equal(t, 1, page.NextSkip())

	id, err := tags.Create(ctx, "b1", "android")
	require.NoError(t, err)
	assert.Equal(t, "t2", id)

	require.NoError(t, tags.Delete(ctx, "t2"))
	assert.Equal(t, "t2", srv.LastBody(t)["tagID"])
}

func TestCompaniesClient(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, map[string]testResponse{
		"/api/v2/companies/list":     {Body: `{"items":[{"id":"co1","name":"Acme"}],"hasNextPage":true,"cursor":"n2"}`},
		"/api/v1/companies/retrieve": {Body: `{"company":{"id":"co1","name":"Acme","customFields":{"tier":"gold"}}}`},
		"/api/v1/companies/update":   {Body: `"ok"`},
		"/api/v1/companies/delete":   {Body: `"ok"`},
	})
	companies := NewTestClient(t, srv).Companies()
	ctx := context.Background()

	page, err := companies.List(ctx, &canny.CompanyListParams{Search: canny.String("ac")})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)

	cursor, ok := page.NextCursor()
	assert.True(t, ok)
	assert.Equal(t, "n2", cursor)
	assert.ElementsMatch(t, []string{"apiKey", "limit", "search"}, keys(srv.LastBody(t)))

	company, err := companies.Retrieve(ctx, "co1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"tier":"gold"}`, string(company.CustomFields))

	require.NoError(t, companies.Update(ctx, &canny.CompanyUpdateRequest{ID: "co1", MonthlySpend: canny.Float64(99.5)}))
	assert.InDelta(t, 99.5, srv.LastBody(t)["monthlySpend"], 0.001)

	require.NoError(t, companies.Delete(ctx, "co1"))
}

func TestVotesClient(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, map[string]testResponse{
		"/api/v1/votes/list":   {Body: `{"hasMore":false,"votes":[{"id":"v1"}]}`},
		"/api/v1/votes/create": {Body: `"ok"`},
		"/api/v1/votes/delete": {Body: `"ok"`},
	})
	votes := NewTestClient(t, srv).Votes()
	ctx := context.Background()

	page, err := votes.List(ctx, &canny.VoteListParams{UserID: canny.String("u1")})
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)

	require.NoError(t, votes.Create(ctx, "p1", "u1"))
	assert.ElementsMatch(t, []string{"apiKey", "postID", "userID"}, keys(srv.LastBody(t)))

	require.NoError(t, votes.Delete(ctx, "v1"))
	assert.Equal(t, "v1", srv.LastBody(t)["voteID"])
}

func TestStatusChangesAndOpportunities(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, map[string]testResponse{
		"/api/v1/status_changes/list": {Body: `{"hasMore":true,"statusChanges":[{"id":"s1","status":"planned"}]}`},
		"/api/v1/opportunities/list":  {Body: `{"hasMore":false,"opportunities":[{"id":"o1","value":1200}]}`},
	})
	client := NewTestClient(t, srv)
	ctx := context.Background()

	changes, err := client.StatusChanges().List(ctx, &canny.StatusChangeListParams{BoardID: "b1"})
	require.NoError(t, err)
	assert.True(t, changes.HasMore)
	assert.Equal(t, "planned", canny.StringValue(changes.Items[0].Status))

	opportunities, err := client.Opportunities().List(ctx, &canny.OpportunityListParams{PostID: "p1"})
	require.NoError(t, err)
	require.Len(t, opportunities.Items, 1)
	assert.InDelta(t, 1200, *opportunities.Items[0].Value, 0)
	assert.Equal(t, "p1", srv.LastBody(t)["postID"])
}

func TestEntriesClient(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, map[string]testResponse{
		"/api/v1/entries/list":     {Body: `{"hasMore":false,"entries":[{"id":"e1","title":"v2 launch","type":"new"}]}`},
		"/api/v1/entries/retrieve": {Body: `{"entry":{"id":"e1"}}`},
		"/api/v1/entries/create":   {Body: `{"id":"e2"}`},
		"/api/v1/entries/update":   {Body: `"ok"`},
		"/api/v1/entries/delete":   {Body: `"ok"`},
	})
	entries := NewTestClient(t, srv).Entries()
	ctx := context.Background()

	_, err := entries.List(ctx, &canny.EntryListParams{Sort: canny.String("newest")})
	require.Error(t, err)
	assert.True(t, canny.IsValidationError(err))

	page, err := entries.List(ctx, &canny.EntryListParams{Sort: canny.String("publishedAt"), LabelIDs: []string{"l1"}})
	require.NoError(t, err)
	assert.Equal(t, "new", canny.StringValue(page.Items[0].Type))

	entry, err := entries.Retrieve(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, "e1", entry.ID)

	id, err := entries.Create(ctx, &canny.EntryCreateRequest{Title: "Launch", Published: canny.Bool(false)})
	require.NoError(t, err)
	assert.Equal(t, "e2", id)
	assert.Equal(t, false, srv.LastBody(t)["published"])

	require.NoError(t, entries.Update(ctx, &canny.EntryUpdateRequest{EntryID: "e2", Notify: canny.Bool(true)}))
	assert.ElementsMatch(t, []string{"apiKey", "entryID", "notify"}, keys(srv.LastBody(t)))

	require.NoError(t, entries.Delete(ctx, "e2"))
}

func TestGroupsIdeasInsights(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, map[string]testResponse{
		"/api/v1/groups/list":       {Body: `{"hasMore":true,"cursor":"g2","groups":[{"id":"g1"}]}`},
		"/api/v1/groups/retrieve":   {Body: `{"group":{"id":"g1","name":"Beta"}}`},
		"/api/v1/ideas/list":        {Body: `{"hasMore":false,"ideas":[{"id":"i1"}]}`},
		"/api/v1/ideas/retrieve":    {Body: `{"idea":null}`},
		"/api/v1/insights/list":     {Body: `{"hasMore":false,"insights":[]}`},
		"/api/v1/insights/retrieve": {Body: `{"insight":{"id":"in1"}}`},
	})
	client := NewTestClient(t, srv)
	ctx := context.Background()

	groups, err := client.Groups().List(ctx, &canny.GroupListParams{Cursor: canny.String("g1")})
	require.NoError(t, err)
	assert.True(t, groups.HasNextPage)
	assert.Equal(t, "g1", srv.LastBody(t)["cursor"])

	group, err := client.Groups().Retrieve(ctx, &canny.IDOrURLName{URLName: canny.String("beta")})
	require.NoError(t, err)
	assert.Equal(t, "Beta", canny.StringValue(group.Name))

	_, err = client.Groups().Retrieve(ctx, &canny.IDOrURLName{})
	assert.True(t, canny.IsValidationError(err))

	ideas, err := client.Ideas().List(ctx, &canny.IdeaListParams{Search: canny.String("sso")})
	require.NoError(t, err)
	assert.Len(t, ideas.Items, 1)

	idea, err := client.Ideas().Retrieve(ctx, &canny.IDOrURLName{ID: canny.String("i9")})
	require.NoError(t, err)
	assert.Nil(t, idea)

	insights, err := client.Insights().List(ctx, &canny.InsightListParams{IdeaID: canny.String("i1")})
	require.NoError(t, err)
	assert.Empty(t, insights.Items)
	assert.False(t, insights.HasNextPage)

	insight, err := client.Insights().Retrieve(ctx, "in1")
	require.NoError(t, err)
	assert.Equal(t, "in1", insight.ID)
}

func TestAutopilotClient(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, map[string]testResponse{
		"/api/v1/autopilot/enqueue": {Body: `{"id":"job1"}`},
	})
	autopilot := NewTestClient(t, srv).Autopilot()

	id, err := autopilot.Enqueue(context.Background(), &canny.AutopilotEnqueueRequest{Feedback: "Need SSO", UserID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, "job1", id)
	assert.ElementsMatch(t, []string{"apiKey", "feedback", "userID"}, keys(srv.LastBody(t)))
}
