package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/chairulsabri/backend-windows-explorer/internal/service"
)

// Services bundles the use cases exposed over HTTP.
type Services struct {
	Folders   service.FolderService
	Files     service.FileService
	Favorites service.FavoriteService
	Snapshots service.SnapshotService
	// Metrics is served on /metrics when set.
	Metrics prometheus.Gatherer
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Static segments (tree/all, stats/storage, check) are registered before their :id siblings.
func RegisterRoutes(app *fiber.App, db *sql.DB, svc Services) {
	app.Get("/", Index())
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())
	if svc.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(svc.Metrics, promhttp.HandlerOpts{})))
	}

	api := app.Group("/api")

	folders := api.Group("/folders")
	folders.Get("/", ListFolders(svc.Folders))
	folders.Get("/tree/all", GetFolderTree(svc.Folders))
	folders.Post("/tree/snapshot", ExportFolderTree(svc.Snapshots))
	folders.Get("/tree/snapshot/:name", GetFolderTreeSnapshot(svc.Snapshots))
	folders.Get("/:id", GetFolder(svc.Folders))
	folders.Get("/:id/contents", GetFolderContents(svc.Folders))
	folders.Post("/", CreateFolder(svc.Folders))
	folders.Put("/:id", UpdateFolder(svc.Folders))
	folders.Post("/:id/move", MoveFolder(svc.Folders))
	folders.Delete("/:id", DeleteFolder(svc.Folders))

	files := api.Group("/files")
	files.Get("/", ListFiles(svc.Files))
	files.Get("/stats/storage", GetStorageStats(svc.Files))
	files.Get("/folder/:folderId", ListFilesByFolder(svc.Files))
	files.Get("/extension/:extension", ListFilesByExtension(svc.Files))
	files.Get("/:id", GetFile(svc.Files))
	files.Post("/", CreateFile(svc.Files))
	files.Put("/:id", UpdateFile(svc.Files))
	files.Post("/:id/move", MoveFile(svc.Files))
	files.Delete("/:id", DeleteFile(svc.Files))

	favorites := api.Group("/favorites")
	favorites.Get("/", ListFavorites(svc.Favorites))
	favorites.Post("/", AddFavorite(svc.Favorites))
	favorites.Get("/check/:itemType/:itemId", CheckFavorite(svc.Favorites))
	favorites.Delete("/:id", RemoveFavorite(svc.Favorites))
}
