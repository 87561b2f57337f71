// Copyright (c) 2020 the NazaraEngine authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"errors"
	"flag"
	"os"
	"os/user"
	"path/filepath"
	"time"

	"github.com/515760058/NazaraEngine/utility/nar"
	log "github.com/sirupsen/logrus"
)

func init() {
	u, err := user.Current()
	if err != nil {
		currentUserName = "unknown"
		return
	}
	currentUserName = u.Name
}

var (
	currentUserName string
	author          = flag.String("author", currentUserName, "Set the author of the package when compressing")
	version         = flag.Int64("version", 1, "Archive version number to create it with")
	extract         = flag.String("e", "", "Extract the given archive")
	compress        = flag.String("c", "", "Compress the given file/folder")
	dstFile         = flag.String("f", "out.nar", "Destination file when compressing")
	dstDir          = flag.String("d", ".", "Destination directory when extracting")
	silent          = flag.Bool("s", false, "Silent")
)

func main() {
	var opMade bool
	flag.Parse()

	if *silent {
		log.SetLevel(log.ErrorLevel)
	}

	if *extract != "" && *compress != "" {
		log.Fatal("only one operation at a time")
	}

	if *extract != "" {
		opMade = true
		if err := extractFiles(); err != nil {
			log.Fatal(err)
		}
	}

	if *compress != "" {
		opMade = true
		if err := compressFiles(); err != nil {
			log.Fatal(err)
		}
	}

	if !opMade {
		flag.PrintDefaults()
	}
}

func compressFiles() error {
	if _, err := os.Stat(*dstFile); err == nil {
		return errors.New("destination file exists, will not overwrite")
	}

	dst, err := os.Create(*dstFile)
	if err != nil {
		return err
	}
	defer dst.Close()

	var filesToCompress []string
	if err := filepath.Walk(*compress, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		filesToCompress = append(filesToCompress, path)
		return nil
	}); err != nil {
		return err
	}

	builder := nar.NewBuilder(nar.Header{
		Author:      *author,
		DateCreated: time.Now().Unix(),
		Version:     *version,
	})

	for _, ftc := range filesToCompress {
		contents, err := os.ReadFile(ftc)
		if err != nil {
			return err
		}
		if err := builder.Add(ftc, contents); err != nil {
			return err
		}
		log.WithField("file", ftc).Info("compressed")
	}

	written, err := builder.WriteTo(dst)
	if err != nil {
		return err
	}
	log.WithField("bytes", written).Info("archive written")
	return nil
}

func extractFiles() error {
	src, err := os.Open(*extract)
	if err != nil {
		return err
	}
	defer src.Close()

	archive, err := nar.Open(src)
	if err != nil {
		return err
	}

	for _, entry := range archive.Index() {
		contents, err := archive.ReadAll(entry.Name)
		if err != nil {
			return err
		}

		target := filepath.Join(*dstDir, filepath.FromSlash(entry.Name))
		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return err
		}
		if err := os.WriteFile(target, contents, 0644); err != nil {
			return err
		}
		log.WithField("file", target).Info("extracted")
	}
	return nil
}
