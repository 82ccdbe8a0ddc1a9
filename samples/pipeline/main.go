// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/Azure/iot-operations-sdks/go/channel"
	"github.com/lmittmann/tint"
)

type job struct {
	producer int
	seq      int
}

func main() {
	capacity := flag.Int("capacity", 4, "channel capacity")
	producers := flag.Int("producers", 3, "number of producers")
	consumers := flag.Int("consumers", 2, "number of consumers")
	jobs := flag.Int("jobs", 5, "jobs per producer")
	flag.Parse()

	log := slog.New(tint.NewHandler(os.Stdout, &tint.Options{
		Level:      slog.LevelDebug,
		TimeFormat: time.Kitchen,
	}))
	slog.SetDefault(log)

	queue := must(channel.New[job](
		*capacity,
		channel.WithName("jobs"),
		channel.WithLogger(log),
	))

	var prod sync.WaitGroup
	for p := range *producers {
		prod.Add(1)
		go func() {
			defer prod.Done()
			for s := range *jobs {
				if err := queue.Send(job{p, s}); err != nil {
					slog.Warn("producer stopped", "producer", p, "error", err)
					return
				}
				slog.Info("sent", "producer", p, "seq", s, "buffered", queue.Len())
			}
		}()
	}

	var cons sync.WaitGroup
	for c := range *consumers {
		cons.Add(1)
		go func() {
			defer cons.Done()
			n := 0
			for j := range queue.All() {
				// Slow consumers exercise producer backpressure.
				time.Sleep(10 * time.Millisecond)
				slog.Info("received", "consumer", c, "job", fmt.Sprintf("%d/%d", j.producer, j.seq))
				n++
			}
			slog.Info("consumer done", "consumer", c, "handled", n)
		}()
	}

	prod.Wait()
	queue.Close()
	cons.Wait()
}

func check(e error) {
	if e != nil {
		panic(e)
	}
}

func must[T any](t T, e error) T {
	check(e)
	return t
}
