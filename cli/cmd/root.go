package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	properties "github.com/codejive/go-properties"
)

var (
	rootCmd = &cobra.Command{
		Use:          "props",
		Short:        "props",
		SilenceUsage: true,
		Long:         `CLI tool for reading and editing .properties files without disturbing their formatting. See README.md.`,
	}

	file     string
	utf8Mode bool
)

// Execute executes the root command.
func Execute() error {
	rootCmd.PersistentFlags().StringVarP(&file, "file", "f", "", "path to the .properties file to operate on")
	rootCmd.PersistentFlags().BoolVar(&utf8Mode, "utf8", false, "read and write the file as UTF-8 instead of ISO-8859-1")
	return rootCmd.Execute()
}

func encoding() properties.Encoding {
	if utf8Mode {
		return properties.UTF8
	}
	return properties.ISO8859_1
}

func loadDocument() (*properties.Document, error) {
	if file == "" {
		return nil, errors.New("no properties file given, use --file")
	}
	return properties.LoadFileEncoding(file, encoding())
}

func storeDocument(doc *properties.Document) error {
	return doc.StoreFileEncoding(file, encoding())
}
