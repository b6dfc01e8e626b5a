package router

import (
	"html/template"
	"path/filepath"
	"time"

	"inkwell/internal/handlers"
	"inkwell/internal/middleware"

	"github.com/gin-contrib/multitemplate"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	// Handlers
	authHandler := handlers.NewAuthHandler()
	blogHandler := handlers.NewBlogHandler()
	voteHandler := handlers.NewVoteHandler()

	// Public Routes
	r.GET("/", blogHandler.Index)

	r.GET("/register", authHandler.ShowRegister)
	r.POST("/register", authHandler.Register)
	r.GET("/login", authHandler.ShowLogin)
	r.POST("/login", authHandler.Login)
	r.GET("/logout", authHandler.Logout)

	// Protected Routes
	authorized := r.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.GET("/create", blogHandler.ShowCreate)
		authorized.POST("/create", blogHandler.Create)
		authorized.GET("/:id/update", blogHandler.ShowEdit)
		authorized.POST("/:id/update", blogHandler.Update)
		authorized.POST("/:id/delete", blogHandler.Delete)
		authorized.GET("/:id/upvote", voteHandler.Upvote)
		authorized.GET("/:id/downvote", voteHandler.Downvote)
	}
}

// LoadTemplates assembles each view with the shared layouts so handler names
// like "blog/index.html" resolve directly.
func LoadTemplates(templatesDir string) multitemplate.Renderer {
	r := multitemplate.NewRenderer()

	layouts, err := filepath.Glob(templatesDir + "/layouts/*.html")
	if err != nil {
		panic(err)
	}

	assemble := func(view string) []string {
		files := make([]string, 0, len(layouts)+1)
		files = append(files, layouts...)
		files = append(files, view)
		return files
	}

	funcMap := template.FuncMap{
		"formatDate": func(t time.Time) string {
			return t.Format("2006-01-02")
		},
	}

	views := []string{
		"auth/login.html",
		"auth/register.html",
		"blog/index.html",
		"blog/create.html",
		"blog/update.html",
		"error.html",
	}
	for _, view := range views {
		r.AddFromFilesFuncs(view, funcMap, assemble(templatesDir+"/views/"+view)...)
	}

	return r
}
