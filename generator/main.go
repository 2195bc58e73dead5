package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"math/rand"
	"time"

	"git.solver4all.com/azaryc2s/slotting"
)

var (
	products    slotting.ArrayIntFlags
	classes     slotting.ArrayIntFlags
	locations   slotting.ArrayIntFlags
	profiles    slotting.ArrayStringFlags
	fixedCosts  slotting.ArrayFloatFlags
	handleCosts slotting.ArrayFloatFlags

	name     *string
	areaTo   *float64
	depthTo  *float64
	demandTo *float64
)

func main() {
	flag.Var(&products, "p", "List of product counts")
	flag.Var(&classes, "c", "List of class counts")
	flag.Var(&locations, "l", "List of location counts")
	flag.Var(&profiles, "profile", "List of data profiles: LINEAR or RNG")
	flag.Var(&fixedCosts, "fixed", "List of fixed costs per unit of opened area")
	flag.Var(&handleCosts, "handle", "List of handling costs per distance and pick")
	name = flag.String("name", "zarychta", "Name for the instance")
	count := flag.Int("count", 1, "Number of instances per combination")
	areaTo = flag.Float64("area", 50, "Max location area for the RNG profile")
	depthTo = flag.Float64("depth", 30, "Max location depth for the RNG profile")
	demandTo = flag.Float64("demand", 200, "Max product demand for the RNG profile")

	flag.Parse()

	if len(profiles) == 0 {
		profiles = slotting.ArrayStringFlags{"LINEAR"}
	}
	if len(fixedCosts) == 0 {
		fixedCosts = slotting.ArrayFloatFlags{1000}
	}
	if len(handleCosts) == 0 {
		handleCosts = slotting.ArrayFloatFlags{2}
	}

	for n := 0; n < *count; n++ {
		rand.Seed(time.Now().UnixNano())
		for i := 0; i < len(products); i++ {
			for j := 0; j < len(classes); j++ {
				for k := 0; k < len(locations); k++ {
					for _, profile := range profiles {
						for _, fixedCost := range fixedCosts {
							for _, handleCost := range handleCosts {
								err := writeInstance(n, products[i], classes[j], locations[k], profile, fixedCost, handleCost)
								if err != nil {
									log.Fatal(err)
								}
							}
						}
					}
				}
			}
		}
	}
}

func writeInstance(n, p, c, l int, profile string, fixedCost, handleCost float64) error {
	area := make([]float64, l)
	depth := make([]float64, l)
	demand := make([]float64, p)
	if profile == "LINEAR" {
		// the linear ramps give reproducible toy instances
		for loc := 0; loc < l; loc++ {
			area[loc] = 10 + 2*float64(loc)
			depth[loc] = 5 + float64(loc)
		}
		for pr := 0; pr < p; pr++ {
			demand[pr] = 100 + 5*float64(pr)
		}
	} else if profile == "RNG" {
		for loc := 0; loc < l; loc++ {
			area[loc] = 1 + rand.Float64()*(*areaTo-1)
			depth[loc] = 1 + rand.Float64()*(*depthTo-1)
		}
		for pr := 0; pr < p; pr++ {
			demand[pr] = rand.Float64() * (*demandTo)
		}
	} else {
		return fmt.Errorf("unsupported profile: %s", profile)
	}

	comment := fmt.Sprintf("%s instance Nr. %d with %d products, %d classes, %d locations, %s data, costs %g/%g", *name, n, p, c, l, profile, fixedCost, handleCost)
	instName := fmt.Sprintf("%s_%d_%d_%d_%s_%g_%g_%d", *name, p, c, l, profile, fixedCost, handleCost, n)
	inst := slotting.Instance{
		Name: instName, Comment: comment, Type: "SLOT",
		Products: p, Classes: c, Locations: l,
		Area: area, Depth: depth, Demand: demand,
		FixedCost: fixedCost, HandleCost: handleCost,
	}

	jsonInst, err := json.MarshalIndent(inst, "", "\t")
	if err != nil {
		return err
	}
	jsonInst = []byte(slotting.SanitizeJsonArrayLineBreaks(string(jsonInst)))
	return ioutil.WriteFile(fmt.Sprintf("%s.json", instName), jsonInst, 0644)
}
