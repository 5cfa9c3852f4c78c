package core

import (
	"path/filepath"
)

const (
	DefaultOutputDir  = "../target/classes/site"
	DefaultPublicPath = "/"
)

// BundlerConfig is the production webpack configuration, serialized as JSON.
type BundlerConfig struct {
	Entry        EntryMap          `json:"entry"`
	Mode         string            `json:"mode"`
	Optimization Optimization      `json:"optimization"`
	Resolve      Resolve           `json:"resolve"`
	Devtool      string            `json:"devtool"`
	Module       ModuleConfig      `json:"module"`
	Externals    map[string]string `json:"externals"`
	Plugins      []Plugin          `json:"plugins"`
	Output       Output            `json:"output"`
}

type Optimization struct {
	RuntimeChunk string      `json:"runtimeChunk"`
	SplitChunks  SplitChunks `json:"splitChunks"`
}

type SplitChunks struct {
	Chunks string `json:"chunks"`
}

type Resolve struct {
	Extensions []string `json:"extensions"`
}

type ModuleConfig struct {
	Rules []Rule `json:"rules"`
}

// Rule describes one loader rule. Test and Exclude hold regular expression
// sources and TestFlags the flags for Test ("i" for case-insensitive); the
// consuming bundler compiles them.
type Rule struct {
	Test      string         `json:"test"`
	TestFlags string         `json:"testFlags,omitempty"`
	Exclude   string         `json:"exclude,omitempty"`
	Loader    string         `json:"loader,omitempty"`
	Options   map[string]any `json:"options,omitempty"`
	Use       []LoaderUse    `json:"use,omitempty"`
}

type LoaderUse struct {
	Loader  string         `json:"loader"`
	Options map[string]any `json:"options"`
}

type Plugin struct {
	Name    string `json:"name"`
	Options any    `json:"options,omitempty"`
}

type Output struct {
	Path       string `json:"path"`
	PublicPath string `json:"publicPath"`
	Filename   string `json:"filename"`
}

const (
	PluginClean       = "clean-webpack-plugin"
	PluginMiniCSS     = "mini-css-extract-plugin"
	PluginHTMLWebpack = "html-webpack-plugin"
)

// BuildBundlerConfig assembles the entry points and wraps them in the fixed
// production settings. Paths in the result are joined onto rootDir.
func BuildBundlerConfig(rootDir, outputDir string, entryPoints []EntryPoint) BundlerConfig {
	if outputDir == "" {
		outputDir = DefaultOutputDir
	}

	entries, bindings := Assemble(entryPoints)

	return BundlerConfig{
		Entry: entries,
		Mode:  "production",
		Optimization: Optimization{
			RuntimeChunk: "single",
			SplitChunks:  SplitChunks{Chunks: "all"},
		},
		Resolve: Resolve{
			Extensions: []string{".js", ".jsx", ".css", ".scss"},
		},
		Devtool:   "source-map",
		Module:    ModuleConfig{Rules: moduleRules(rootDir)},
		Externals: map[string]string{"jquery": "jQuery"},
		Plugins:   compilePlugins(bindings),
		Output: Output{
			Path:       filepath.Join(rootDir, outputDir),
			PublicPath: DefaultPublicPath,
			Filename:   "js/[name].[hash].js",
		},
	}
}

func moduleRules(rootDir string) []Rule {
	return []Rule{
		{
			Test:      `\.(css|scss)$`,
			TestFlags: "i",
			Use: []LoaderUse{
				{Loader: "mini-css-extract-plugin/loader", Options: map[string]any{}},
				{Loader: "css-loader", Options: map[string]any{}},
				{
					Loader: "sass-loader",
					Options: map[string]any{
						"sassOptions": map[string]any{
							"includePaths": []string{
								filepath.Join(rootDir, "src", "css"),
								filepath.Join(rootDir, "node_modules"),
							},
						},
					},
				},
			},
		},
		{
			Test:    `\.(js|jsx)$`,
			Exclude: `node_modules`,
			Loader:  "babel-loader",
			Options: map[string]any{"presets": []string{"@babel/env"}},
		},
		{
			Test:    `\.(woff(2)?|ttf|eot|otf)(\?v=\d+\.\d+\.\d+)?$`,
			Loader:  "file-loader",
			Options: map[string]any{"name": "fonts/[name].[ext]"},
		},
		{
			Test:    `\.(png|gif|jpg)$`,
			Loader:  "file-loader",
			Options: map[string]any{"name": "img/[name].[ext]"},
		},
		{
			Test:   `[\\/]img[\\/].*\.svg$`,
			Loader: "@svgr/webpack",
			Options: map[string]any{
				"name": "img/[name].[ext]",
				"svgoConfig": map[string]any{
					"plugins": map[string]any{"removeViewBox": false},
				},
			},
		},
	}
}

// compilePlugins returns the clean and css-extract plugins followed by one
// html plugin per binding, in binding order.
func compilePlugins(bindings []TemplateBinding) []Plugin {
	plugins := make([]Plugin, 0, len(bindings)+2)
	plugins = append(plugins,
		Plugin{Name: PluginClean},
		Plugin{
			Name: PluginMiniCSS,
			Options: map[string]string{
				"filename":      "css/[name].css",
				"chunkFilename": "css/[name].[hash].css",
			},
		},
	)

	for _, binding := range bindings {
		plugins = append(plugins, Plugin{Name: PluginHTMLWebpack, Options: binding})
	}

	return plugins
}

// HTMLBindings returns the template bindings carried by the html plugins.
func (c BundlerConfig) HTMLBindings() []TemplateBinding {
	var bindings []TemplateBinding
	for _, p := range c.Plugins {
		if b, ok := p.Options.(TemplateBinding); ok && p.Name == PluginHTMLWebpack {
			bindings = append(bindings, b)
		}
	}
	return bindings
}
