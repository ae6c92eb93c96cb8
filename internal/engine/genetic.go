package engine

import (
	"math/rand"
	"sort"

	"github.com/ChrisBlueStone/TFBinPacker/internal/model"
)

// GeneticConfig holds parameters for the genetic ordering optimizer.
type GeneticConfig struct {
	PopulationSize int
	Generations    int
	MutationRate   float64
	TournamentSize int
	EliteCount     int
}

// DefaultGeneticConfig returns sensible default parameters.
func DefaultGeneticConfig() GeneticConfig {
	return GeneticConfig{
		PopulationSize: 50,
		Generations:    100,
		MutationRate:   0.15,
		TournamentSize: 3,
		EliteCount:     2,
	}
}

// chromosome represents a candidate solution: a placement order over the
// expanded item list. Orientation is not encoded; the allocator picks the
// better orientation per placement on its own.
type chromosome struct {
	order   []int
	fitness float64
}

// geneticLayouter implements the genetic algorithm over packing order.
type geneticLayouter struct {
	settings model.LayoutSettings
	config   GeneticConfig
	items    []model.Item
	rng      *rand.Rand
}

func newGeneticLayouter(settings model.LayoutSettings, config GeneticConfig, items []model.Item, seed int64) *geneticLayouter {
	return &geneticLayouter{
		settings: settings,
		config:   config,
		items:    items,
		rng:      rand.New(rand.NewSource(seed)),
	}
}

// optimize runs the genetic algorithm and returns the best result.
func (g *geneticLayouter) optimize() model.LayoutResult {
	if len(g.items) == 0 {
		return model.LayoutResult{}
	}

	population := g.initPopulation()
	for i := range population {
		population[i].fitness = g.evaluate(population[i])
	}

	for gen := 0; gen < g.config.Generations; gen++ {
		sort.Slice(population, func(i, j int) bool {
			return population[i].fitness > population[j].fitness
		})

		newPop := make([]chromosome, 0, g.config.PopulationSize)

		// Elitism: carry over the best individuals unchanged
		eliteCount := g.config.EliteCount
		if eliteCount > len(population) {
			eliteCount = len(population)
		}
		for i := 0; i < eliteCount; i++ {
			newPop = append(newPop, g.copyChromosome(population[i]))
		}

		for len(newPop) < g.config.PopulationSize {
			parent1 := g.tournamentSelect(population)
			parent2 := g.tournamentSelect(population)

			child := g.orderCrossover(parent1, parent2)
			g.mutate(&child)

			child.fitness = g.evaluate(child)
			newPop = append(newPop, child)
		}

		population = newPop
	}

	sort.Slice(population, func(i, j int) bool {
		return population[i].fitness > population[j].fitness
	})

	return g.decode(population[0])
}

// initPopulation creates the initial random population, seeded with the
// greedy largest-first order so the GA never does worse than the greedy
// heuristic.
func (g *geneticLayouter) initPopulation() []chromosome {
	n := len(g.items)
	population := make([]chromosome, g.config.PopulationSize)

	for i := range population {
		population[i] = chromosome{order: g.rng.Perm(n)}
	}

	if g.config.PopulationSize > 0 {
		population[0] = g.createGreedyChromosome()
	}

	return population
}

// createGreedyChromosome builds the area-descending order.
func (g *geneticLayouter) createGreedyChromosome() chromosome {
	n := len(g.items)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		return g.items[order[i]].Area() > g.items[order[j]].Area()
	})
	return chromosome{order: order}
}

// evaluate computes the fitness of a chromosome by decoding it into a layout
// and measuring canvas efficiency. Unplaced items and extra canvases are
// penalized.
func (g *geneticLayouter) evaluate(c chromosome) float64 {
	result := g.decode(c)

	if len(result.Canvases) == 0 {
		return 0
	}

	efficiency := result.TotalEfficiency() / 100.0
	unplacedPenalty := float64(len(result.UnplacedItems)) * 0.1
	canvasPenalty := float64(len(result.Canvases)-1) * 0.05

	fitness := efficiency - unplacedPenalty - canvasPenalty
	if fitness < 0 {
		fitness = 0
	}
	return fitness
}

// decode converts a chromosome into an actual layout.
func (g *geneticLayouter) decode(c chromosome) model.LayoutResult {
	ordered := make([]model.Item, len(c.order))
	for i, idx := range c.order {
		ordered[i] = g.items[idx]
	}

	l := &Layouter{Settings: g.settings}
	return l.layoutOrdered(ordered)
}

// tournamentSelect picks the best individual from a random tournament.
func (g *geneticLayouter) tournamentSelect(population []chromosome) chromosome {
	best := population[g.rng.Intn(len(population))]
	for i := 1; i < g.config.TournamentSize; i++ {
		candidate := population[g.rng.Intn(len(population))]
		if candidate.fitness > best.fitness {
			best = candidate
		}
	}
	return g.copyChromosome(best)
}

// orderCrossover implements Order Crossover (OX1) for permutation chromosomes.
// It preserves the relative order of genes from both parents.
func (g *geneticLayouter) orderCrossover(parent1, parent2 chromosome) chromosome {
	n := len(parent1.order)
	if n <= 2 {
		return g.copyChromosome(parent1)
	}

	point1 := g.rng.Intn(n)
	point2 := g.rng.Intn(n)
	if point1 > point2 {
		point1, point2 = point2, point1
	}

	child := chromosome{order: make([]int, n)}

	inSegment := make(map[int]bool)
	for i := point1; i <= point2; i++ {
		child.order[i] = parent1.order[i]
		inSegment[parent1.order[i]] = true
	}

	childIdx := (point2 + 1) % n
	for _, idx := range parent2.order {
		if !inSegment[idx] {
			child.order[childIdx] = idx
			childIdx = (childIdx + 1) % n
		}
	}

	return child
}

// mutate applies random mutations to a chromosome.
func (g *geneticLayouter) mutate(c *chromosome) {
	n := len(c.order)
	if n < 2 {
		return
	}

	// Swap mutation: swap two random positions
	if g.rng.Float64() < g.config.MutationRate {
		i := g.rng.Intn(n)
		j := g.rng.Intn(n)
		c.order[i], c.order[j] = c.order[j], c.order[i]
	}

	// Inversion mutation: reverse a small segment (less frequent)
	if g.rng.Float64() < g.config.MutationRate*0.5 {
		i := g.rng.Intn(n)
		j := g.rng.Intn(n)
		if i > j {
			i, j = j, i
		}
		for i < j {
			c.order[i], c.order[j] = c.order[j], c.order[i]
			i++
			j--
		}
	}
}

// copyChromosome creates a deep copy of a chromosome.
func (g *geneticLayouter) copyChromosome(c chromosome) chromosome {
	order := make([]int, len(c.order))
	copy(order, c.order)
	return chromosome{order: order, fitness: c.fitness}
}

// LayoutGenetic runs the genetic ordering optimizer. It expands items by
// quantity, then uses the GA to find a good placement order.
func LayoutGenetic(settings model.LayoutSettings, items []model.Item) model.LayoutResult {
	expanded := expandByQuantity(items)
	if len(expanded) == 0 {
		return model.LayoutResult{}
	}

	config := DefaultGeneticConfig()

	// Scale effort for larger problems
	if len(expanded) > 20 {
		config.Generations = 150
	}
	if len(expanded) > 50 {
		config.Generations = 200
		config.PopulationSize = 80
	}

	ga := newGeneticLayouter(settings, config, expanded, 42)
	return ga.optimize()
}
