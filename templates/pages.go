package templates

import (
	"fmt"

	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"

	"github.com/midnamic912/Midna-Blog/database"
)

func HomePage(props LayoutProps, posts []database.BlogPost) g.Node {
	return Layout(props,
		Header(Class("page-heading"),
			H1(g.Text(props.Title)),
			P(Class("subheading"), g.Text("A collection of random musings.")),
		),
		Div(Class("post-list"),
			g.Group(g.Map(posts, func(post database.BlogPost) g.Node {
				return Div(Class("post-preview"),
					A(Href(fmt.Sprintf("/post/%d", post.ID)),
						H2(Class("post-title"), g.Text(post.Title)),
						H3(Class("post-subtitle"), g.Text(post.Subtitle)),
					),
					P(Class("post-meta"),
						g.Textf("Posted by %s on %s", post.Author.Name, post.Date),
						g.If(props.IsAdmin,
							Span(Class("admin-actions"),
								A(Href(fmt.Sprintf("/edit-post/%d", post.ID)), g.Text("Edit")),
								A(Href(fmt.Sprintf("/delete/%d", post.ID)), g.Text("Delete")),
							),
						),
					),
					Hr(),
				)
			})),
		),
		g.If(props.IsAdmin,
			Div(Class("create-post"),
				A(Class("button primary"), Href("/new-post"), g.Text("Create New Post")),
			),
		),
	)
}

func PostPage(props LayoutProps, post *database.BlogPost) g.Node {
	return Layout(props,
		Header(Class("post-heading"),
			g.If(post.ImgURL != "", Img(Src(post.ImgURL), Alt(post.Title))),
			H1(g.Text(post.Title)),
			H2(Class("post-subtitle"), g.Text(post.Subtitle)),
			P(Class("post-meta"), g.Textf("Posted by %s on %s", post.Author.Name, post.Date)),
		),
		Article(Class("post-body"),
			g.Raw(post.Body),
		),
		Hr(),
		Div(Class("comments"),
			H3(g.Text("Comments")),
			g.Group(g.Map(post.Comments, func(comment database.Comment) g.Node {
				return Div(Class("comment"),
					P(Class("comment-text"), g.Text(comment.Text)),
					P(Class("comment-author"), g.Textf("— %s", comment.Author.Name)),
				)
			})),
			commentForm(props, post),
		),
	)
}

func commentForm(props LayoutProps, post *database.BlogPost) g.Node {
	if props.CurrentUser == "" {
		return P(A(Href("/login"), g.Text("Login to leave a comment.")))
	}
	return Form(Method("post"), Action(fmt.Sprintf("/post/%d", post.ID)),
		Label(For("comment"), g.Text("Comment")),
		Textarea(ID("comment"), Name("comment"), g.Attr("rows", "4"), Required()),
		Button(Type("submit"), Class("button primary"), g.Text("Submit Comment")),
	)
}

func RegisterPage(props LayoutProps) g.Node {
	return Layout(props,
		H1(g.Text("Register")),
		Form(Method("post"), Action("/register"),
			Label(For("name"), g.Text("Name")),
			Input(Type("text"), ID("name"), Name("name"), Required()),
			Label(For("email"), g.Text("Email")),
			Input(Type("email"), ID("email"), Name("email"), Required()),
			Label(For("password"), g.Text("Password")),
			Input(Type("password"), ID("password"), Name("password"), Required()),
			Button(Type("submit"), Class("button primary"), g.Text("Sign Me Up!")),
		),
	)
}

func LoginPage(props LayoutProps) g.Node {
	return Layout(props,
		H1(g.Text("Login")),
		Form(Method("post"), Action("/login"),
			Label(For("email"), g.Text("Email")),
			Input(Type("email"), ID("email"), Name("email"), Required()),
			Label(For("password"), g.Text("Password")),
			Input(Type("password"), ID("password"), Name("password"), Required()),
			Button(Type("submit"), Class("button primary"), g.Text("Let Me In!")),
		),
	)
}

// MakePostPage renders both the create and the edit form; post is nil when
// creating.
func MakePostPage(props LayoutProps, post *database.BlogPost, isEdit bool) g.Node {
	heading := "New Post"
	action := "/new-post"
	var title, subtitle, imgURL, body string
	if isEdit && post != nil {
		heading = "Edit Post"
		action = fmt.Sprintf("/edit-post/%d", post.ID)
		title = post.Title
		subtitle = post.Subtitle
		imgURL = post.ImgURL
		body = post.Body
	}

	return Layout(props,
		H1(g.Text(heading)),
		Form(Method("post"), Action(action),
			Label(For("title"), g.Text("Blog Post Title")),
			Input(Type("text"), ID("title"), Name("title"), Value(title), Required()),
			Label(For("subtitle"), g.Text("Subtitle")),
			Input(Type("text"), ID("subtitle"), Name("subtitle"), Value(subtitle), Required()),
			Label(For("img_url"), g.Text("Blog Image URL")),
			Input(Type("text"), ID("img_url"), Name("img_url"), Value(imgURL), Required()),
			Label(For("body"), g.Text("Blog Content")),
			Textarea(ID("body"), Name("body"), g.Attr("rows", "12"), Required(), g.Text(body)),
			Button(Type("submit"), Class("button primary"), g.Text("Submit Post")),
		),
	)
}

func AboutPage(props LayoutProps) g.Node {
	return Layout(props,
		H1(g.Text("About Me")),
		P(g.Text("This is what I do.")),
		P(g.Text("Hey! I'm Midna. I write here about whatever happens to be on my mind: code, games, and the occasional long walk.")),
	)
}

func ContactPage(props LayoutProps, sent bool) g.Node {
	heading := "Contact Me"
	if sent {
		heading = "Successfully sent your message!"
	}
	return Layout(props,
		H1(g.Text(heading)),
		P(g.Text("Have questions? I have answers.")),
		Form(Method("post"), Action("/contact"),
			Label(For("name"), g.Text("Name")),
			Input(Type("text"), ID("name"), Name("name"), Required()),
			Label(For("email"), g.Text("Email Address")),
			Input(Type("email"), ID("email"), Name("email"), Required()),
			Label(For("phone"), g.Text("Phone Number")),
			Input(Type("tel"), ID("phone"), Name("phone")),
			Label(For("message"), g.Text("Message")),
			Textarea(ID("message"), Name("message"), g.Attr("rows", "6"), Required()),
			Button(Type("submit"), Class("button primary"), g.Text("Send")),
		),
	)
}
