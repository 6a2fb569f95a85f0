package commands

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/fivetwenty-io/canny-cli/internal/constants"
	"github.com/fivetwenty-io/canny-cli/pkg/canny"
)

// detailView prints a bold title, a rule and "Field: value" lines.
type detailView struct {
	rt *Runtime
}

func (rt *Runtime) detail(title string) *detailView {
	_, _ = fmt.Fprintf(rt.stdout, "\n%s\n%s\n",
		rt.colors.bold.Sprint(title),
		rt.colors.dim.Sprint(strings.Repeat("─", constants.RuleWidth)))

	return &detailView{rt: rt}
}

func (d *detailView) field(label, value string) *detailView {
	_, _ = fmt.Fprintf(d.rt.stdout, "%s: %s\n", label, value)

	return d
}

// opt prints the field only when v is set, painted with c when c is not nil.
func (d *detailView) opt(label string, v *string, c *color.Color) *detailView {
	if v == nil || *v == "" {
		return d
	}

	if c == nil {
		return d.field(label, *v)
	}

	return d.field(label, c.Sprint(*v))
}

func (d *detailView) section(label string, body *string) {
	if body == nil || *body == "" {
		return
	}

	_, _ = fmt.Fprintf(d.rt.stdout, "\n%s\n%s\n", d.rt.colors.bold.Sprint(label), *body)
}

// postStatus upper-cases and colors a post status.
func (rt *Runtime) postStatus(status *string) string {
	value := strings.ToUpper(valueOr(status, "unknown"))

	switch strings.ToLower(value) {
	case "open":
		return rt.colors.yellow.Sprint(value)
	case "planned", "in progress":
		return rt.colors.blue.Sprint(value)
	case "complete":
		return rt.colors.green.Sprint(value)
	case "closed":
		return rt.colors.red.Sprint(value)
	default:
		return value
	}
}

func (rt *Runtime) entryStatus(status *string) string {
	value := strings.ToUpper(valueOr(status, "draft"))

	switch strings.ToLower(value) {
	case "published":
		return rt.colors.green.Sprint(value)
	case "draft":
		return rt.colors.yellow.Sprint(value)
	default:
		return value
	}
}

func (rt *Runtime) renderPost(post *canny.Post) {
	d := rt.detail(post.Title)

	if post.Status != nil {
		d.field("Status", rt.postStatus(post.Status))
	}

	d.field("Votes", rt.colors.cyan.Sprint(post.Score))
	d.field("Comments", rt.colors.cyan.Sprint(post.CommentCount))

	if post.Author != nil {
		d.field("Author", post.Author.Name)
	}

	if post.Category != nil {
		d.field("Category", rt.colors.magenta.Sprint(post.Category.Name))
	}

	d.opt("Created", post.Created, rt.colors.dim)
	d.field("URL", post.URL)
	d.field("ID", rt.colors.dim.Sprint(post.ID))
	d.section("Description:", post.Details)
}

func (rt *Runtime) renderComment(comment *canny.Comment) {
	d := rt.detail("Comment")

	d.field("ID", rt.colors.cyan.Sprint(comment.ID))
	d.field("Author", userName(comment.Author))
	d.field("Created", rt.colors.dim.Sprint(comment.Created))

	if comment.Post != nil {
		d.field("Post ID", rt.colors.dim.Sprint(comment.Post.ID))
		d.field("Post", comment.Post.Title)
	}

	if comment.ParentID != nil {
		d.field("Parent ID", rt.colors.dim.Sprint(*comment.ParentID)+" (reply)")
	}

	if canny.BoolValue(comment.Pinned) {
		d.field("Pinned", rt.colors.yellow.Sprint(Yes))
	}

	d.section("Content:", &comment.Value)
}

func (rt *Runtime) renderCategory(category *canny.Category) {
	rt.detail(category.Name).
		field("ID", rt.colors.cyan.Sprint(category.ID)).
		field("Posts", rt.colors.cyan.Sprint(canny.IntValue(category.PostCount))).
		opt("URL", category.URL, nil)
}

func (rt *Runtime) renderUser(user *canny.UserFull) {
	d := rt.detail(valueOr(user.Name, "(no name)"))

	d.field("ID", rt.colors.cyan.Sprint(user.ID))
	d.opt("Email", user.Email, nil)

	if canny.BoolValue(user.IsAdmin) {
		d.field("Role", rt.colors.magenta.Sprint("Admin"))
	}

	d.opt("Created", user.Created, rt.colors.dim)
	d.opt("Last Activity", user.LastActivity, rt.colors.dim)
	d.opt("URL", user.URL, nil)
	d.opt("User ID", user.UserID, rt.colors.dim)
}

func (rt *Runtime) renderBoard(board *canny.Board) {
	d := rt.detail(board.Name)

	d.field("ID", rt.colors.cyan.Sprint(board.ID))
	d.field("Posts", rt.colors.cyan.Sprint(canny.IntValue(board.PostCount)))

	if board.IsPrivate != nil {
		d.field("Private", yesNo(board.IsPrivate))
	}

	if board.PrivateComments != nil {
		d.field("Private Comments", yesNo(board.PrivateComments))
	}

	d.opt("Created", board.Created, rt.colors.dim)
	d.opt("URL", board.URL, nil)
}

func (rt *Runtime) renderTag(tag *canny.Tag) {
	rt.detail(tag.Name).
		field("ID", rt.colors.cyan.Sprint(tag.ID)).
		field("Posts", rt.colors.cyan.Sprint(canny.IntValue(tag.PostCount))).
		opt("Board ID", tag.BoardID, rt.colors.dim).
		opt("Created", tag.Created, rt.colors.dim).
		opt("URL", tag.URL, nil)
}

func (rt *Runtime) renderCompany(company *canny.Company) {
	d := rt.detail(valueOr(company.Name, "(no name)"))

	d.field("ID", rt.colors.cyan.Sprint(company.ID))
	d.field("Users", rt.colors.cyan.Sprint(canny.IntValue(company.UserCount)))

	if company.MonthlySpend != nil {
		d.field("Monthly Spend", formatSpend(company.MonthlySpend))
	}

	d.opt("Created", company.Created, rt.colors.dim)

	if len(company.CustomFields) > 0 && string(company.CustomFields) != "null" {
		custom := string(company.CustomFields)
		d.section("Custom Fields:", &custom)
	}
}

func formatSpend(v *float64) string {
	if v == nil {
		return NotAvailable
	}

	return fmt.Sprintf("$%.2f", *v)
}

func (rt *Runtime) renderVote(vote *canny.Vote) {
	d := rt.detail("Vote")

	d.field("ID", rt.colors.cyan.Sprint(vote.ID))

	if vote.Voter != nil {
		d.field("Voter", vote.Voter.Name)
		d.opt("Email", vote.Voter.Email, nil)
	}

	d.opt("Post ID", vote.PostID, rt.colors.dim)
	d.opt("Created", vote.Created, rt.colors.dim)
}

func (rt *Runtime) renderEntry(entry *canny.Entry) {
	d := rt.detail(valueOr(entry.Title, "(no title)"))

	d.field("ID", rt.colors.cyan.Sprint(entry.ID))
	d.opt("Type", entry.Type, rt.colors.magenta)

	if entry.Status != nil {
		d.field("Status", rt.entryStatus(entry.Status))
	}

	d.opt("Published", entry.PublishedAt, rt.colors.dim)
	d.opt("Created", entry.Created, rt.colors.dim)
	d.opt("URL", entry.URL, nil)
	d.section("Details:", entry.Details)
}

func (rt *Runtime) renderGroup(group *canny.Group) {
	rt.detail(valueOr(group.Name, "(no name)")).
		field("ID", rt.colors.cyan.Sprint(group.ID)).
		field("Members", rt.colors.cyan.Sprint(intOr(group.MemberCount, "0"))).
		opt("Created", group.Created, rt.colors.dim).
		opt("URL", group.URL, nil)
}

func (rt *Runtime) renderInsight(insight *canny.Insight) {
	d := rt.detail(valueOr(insight.Title, "(no title)"))

	d.field("ID", rt.colors.cyan.Sprint(insight.ID))
	d.opt("Created", insight.Created, rt.colors.dim)
	d.opt("URL", insight.URL, nil)
	d.section("Description:", insight.Description)
}

func (rt *Runtime) renderIdea(idea *canny.Idea) {
	d := rt.detail(valueOr(idea.Name, "(no name)"))

	d.field("ID", rt.colors.cyan.Sprint(idea.ID))
	d.field("Posts", rt.colors.cyan.Sprint(canny.IntValue(idea.PostCount)))
	d.opt("Created", idea.Created, rt.colors.dim)
	d.opt("URL", idea.URL, nil)
	d.section("Description:", idea.Description)
}
