package main

import (
	"github.com/BrandonKowalski/navkit/pkg/navkit"
	"github.com/spf13/cobra"
)

var (
	configPath string
	fontPath   string
	languages  []string
	logPath    string
	coverURL   string
	cannoli    bool
)

var rootCmd = &cobra.Command{
	Use:   "navkit-demo",
	Short: "Browse a sample library with navkit pages",
	Long: `navkit-demo walks through a small game library: a list at the root,
a pushed cover page per game and a presented settings page that asks
before discarding changes.`,
	SilenceUsage: true,
	RunE:         run,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "navkit TOML config file")
	rootCmd.Flags().StringVar(&fontPath, "font", "", "font file, overrides the theme font")
	rootCmd.Flags().StringSliceVar(&languages, "lang", nil, "preferred languages, e.g. de,en")
	rootCmd.Flags().StringVar(&logPath, "log", "", "log file path")
	rootCmd.Flags().StringVar(&coverURL, "cover-url", "", "remote image used as the game cover")
	rootCmd.Flags().BoolVar(&cannoli, "cannoli", false, "use the Cannoli theme")
}

func run(cmd *cobra.Command, args []string) error {
	err := navkit.Init(navkit.Options{
		WindowTitle: "navkit demo",
		ConfigPath:  configPath,
		FontPath:    fontPath,
		IsCannoli:   cannoli,
		Languages:   languages,
		LogPath:     logPath,
	})
	if err != nil {
		return err
	}
	defer navkit.Close()

	logger := navkit.GetLogger()
	logger.Info("Starting demo", "config", configPath, "languages", languages)

	err = newRouter().Run(ScreenLibrary, LibraryInput{Games: sampleGames})
	if navkit.IsCancelled(err) {
		logger.Info("Window closed")
		return nil
	}
	return err
}
