package catalog

// Source kinds.
const (
	SourceStorage = "storage"
	SourceDir     = "dir"
)

// Config describes where the asset bundle lives and how its files are recognized.
type Config struct {
	// Source selects the bundle backend: "storage" (bucket prefix) or "dir" (local directory).
	Source string `mapstructure:"source" default:"dir"`
	// BundlePath is the object prefix (storage) or the directory (dir) of the bundle.
	BundlePath string `mapstructure:"bundle_path" default:"customhats"`
	// ModelExts lists the file extensions of visual models.
	ModelExts []string `mapstructure:"model_exts" default:".glb,.gltf,.fbx,.obj,.prefab"`
	// IconExts lists the file extensions of icons.
	IconExts []string `mapstructure:"icon_exts" default:".png,.jpg,.jpeg"`
}
