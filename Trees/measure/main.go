// Command measure compares the time taken to search a word list with a
// linear scan, with LinkedBST in its unbalanced, shuffled and rebalanced
// shapes, and with other ordered and hashed containers.
//
//	measure -file words.txt -lines 10000 -tests 5000
package main

import (
	"flag"
	"math/rand"
	"time"

	log "github.com/sirupsen/logrus"
)

func main() {
	path := flag.String("file", "words.txt", "word list, one word per line")
	nLines := flag.Int("lines", 10000, "number of lines of the file to use")
	nTests := flag.Int("tests", 5000, "number of searches per container")
	seed := flag.Int64("seed", 0, "random seed, 0 for a time based seed")
	degree := flag.Int("degree", 32, "degree of the B-Tree")
	level := flag.String("log-level", "info", "logging level")
	flag.Parse()

	lvl, err := log.ParseLevel(*level)
	if err != nil {
		log.WithError(err).Fatal("invalid -log-level")
	}
	log.SetLevel(lvl)
	if *nLines <= 0 || *nTests <= 0 || *degree < 2 {
		log.WithFields(log.Fields{"lines": *nLines, "tests": *nTests, "degree": *degree}).Fatal("invalid arguments")
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	words, err := ReadLines(*path)
	if err != nil {
		log.WithError(err).Fatal("can't load word list")
	}
	if len(words) > *nLines {
		words = words[:*nLines]
	}
	if len(words) == 0 {
		log.WithField("file", *path).Fatal("word list is empty")
	}

	r := rand.New(rand.NewSource(*seed))
	probes := make([]string, *nTests)
	for i := range probes {
		probes[i] = words[r.Intn(len(words))]
	}
	log.WithFields(log.Fields{
		"file":  *path,
		"lines": len(words),
		"tests": len(probes),
		"seed":  *seed,
	}).Info("start of search comparison, this can take a while")

	for _, c := range contenders(r, *degree) {
		res := run(c, words, probes)
		entry := log.WithFields(log.Fields{
			"container":  c.name,
			"search":     res.search,
			"per_search": res.search / time.Duration(len(probes)),
		})
		if res.missed > 0 {
			entry.WithField("missed", res.missed).Error("container lost words")
		} else {
			entry.WithField("build", res.build).Info("searched")
		}
	}
}
