package scaffold

// Config carries the scaffold command's environment-driven defaults.
type Config struct {
	RecipesDir string `env:"RECIPEKIT_RECIPES_DIR" envDefault:"recipes"`
	AssetsDir  string `env:"RECIPEKIT_ASSETS_DIR" envDefault:"recipes/assets/images"`
	NavPath    string `env:"RECIPEKIT_NAV_PATH" envDefault:"mkdocs.yml"`
}
