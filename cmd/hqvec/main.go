package main

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/humz2k/hqvec"
	"github.com/humz2k/hqvec/metric"
	"github.com/humz2k/hqvec/nearest"
	"github.com/humz2k/hqvec/number"
	"github.com/humz2k/hqvec/vecmath"
)

func readFeature[T number.Float](r io.Reader, nDim uint) ([]T, error) {
	feature := make([]T, nDim)
	for j := uint(0); j < nDim; j++ {
		var v T
		err := binary.Read(r, binary.LittleEndian, &v)
		if err != nil {
			return nil, err
		}
		feature[j] = v
	}

	return feature, nil
}

func runNearest[T number.Float, A hqvec.Array[T]](nDim uint, inputName string, k int) error {
	file, err := os.Open(inputName)
	if err != nil {
		return err
	}
	defer file.Close()

	log.Println("reading data...")
	ix := nearest.NewIndex[hqvec.Vec[T, A], int, metric.SqL2[T, A]]()
	fr := bufio.NewReader(file)
	for i := 0; ; i++ {
		feature, err := readFeature[T](fr, nDim)
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		ix.Add(hqvec.Load[T, A](feature), i)
	}
	log.Printf("done: %d points", ix.Len())

	r := bufio.NewReader(os.Stdin)
	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	for {
		feature, err := readFeature[T](r, nDim)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		neighbors, err := ix.Search(hqvec.Load[T, A](feature), k)
		if err != nil {
			return err
		}
		for _, n := range neighbors {
			fmt.Fprintf(w, "%d %g\n", n.Item, n.Distance)
		}
		w.Flush()
	}
}

func nearestDim[T number.Float](nDim uint, inputName string, k int) error {
	switch nDim {
	case 2:
		return runNearest[T, [2]T](nDim, inputName, k)
	case 3:
		return runNearest[T, [3]T](nDim, inputName, k)
	case 4:
		return runNearest[T, [4]T](nDim, inputName, k)
	case 5:
		return runNearest[T, [5]T](nDim, inputName, k)
	case 6:
		return runNearest[T, [6]T](nDim, inputName, k)
	case 7:
		return runNearest[T, [7]T](nDim, inputName, k)
	case 8:
		return runNearest[T, [8]T](nDim, inputName, k)
	default:
		return fmt.Errorf("unsupported dim: %d", nDim)
	}
}

func nearestAction(c *cli.Context) error {
	dtype := c.String("dtype")
	nDim := c.Uint("dim")
	inputName := c.String("input")
	k := c.Int("k")

	switch dtype {
	case "float32":
		return nearestDim[float32](nDim, inputName, k)
	case "float64":
		return nearestDim[float64](nDim, inputName, k)
	default:
		return fmt.Errorf("unknown dtype: %s", dtype)
	}
}

func demoAction(c *cli.Context) error {
	tmp := []float32{9, 8}

	a := hqvec.Load2(tmp)
	b := hqvec.V2[float32](1, 8)
	fmt.Println(a.Distance(b))

	a.Data()[0] = 10
	fmt.Println(a)
	fmt.Println(b)

	prod := a.Mul(b)
	fmt.Println(hqvec.Cast[int32, [6]int32](hqvec.Grow[[6]float32](prod.Gen())))

	prod.CopyTo(tmp)
	fmt.Println(hqvec.Cast2[int32](prod))
	fmt.Println(tmp[0], tmp[1])
	fmt.Println(a == b, prod == a.Mul(b))

	fmt.Println(hqvec.Cast2[int32](vecmath.RoundVec2(vecmath.PowVec2(a, hqvec.V2[float32](2, 2)))))

	fmt.Println(hqvec.V2[float32](1, 2).SquaredNorm())

	return nil
}

func main() {
	app := &cli.App{
		Name:     "hqvec",
		HelpName: "hqvec",
		Usage:    "fixed-size vector utilities",
		Commands: []*cli.Command{
			{
				Name:      "demo",
				Usage:     "walk through the vector API",
				UsageText: "hqvec demo",
				Action:    demoAction,
			},
			{
				Name:      "nearest",
				Usage:     "answer nearest-neighbor queries from stdin",
				UsageText: "hqvec nearest [command options]",
				Action:    nearestAction,
				Flags: []cli.Flag{
					&cli.UintFlag{
						Name:  "dim",
						Value: 4,
						Usage: "dimension of feature",
					},
					&cli.StringFlag{
						Name:  "dtype",
						Value: "float32",
						Usage: "data type",
					},
					&cli.StringFlag{
						Name:  "input",
						Value: "features.bin",
						Usage: "feature file",
					},
					&cli.IntFlag{
						Name:  "k",
						Value: 5,
						Usage: "neighbors per query",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
