// Package gather ejecuta un conjunto de tareas independientes y espera a que
// todas terminen. Un fallo no cancela a las demás: cada error se entrega al
// callback de la tarea que lo produjo y además se devuelve agregado.
package gather

import (
	"context"
	"sync/atomic"

	"github.com/sourcegraph/conc/pool"
)

// Task es una unidad de trabajo independiente.
type Task func(ctx context.Context) error

// Result resume la ejecución de All.
type Result struct {
	Total  int
	Failed int
	Err    error // errores agregados; nil si todas terminaron bien
}

// All corre las tareas con a lo sumo limit goroutines (limit <= 0 = sin límite)
// y bloquea hasta que terminen todas. onError puede ser nil.
func All(ctx context.Context, limit int, tasks []Task, onError func(i int, err error)) Result {
	res := Result{Total: len(tasks)}
	if len(tasks) == 0 {
		return res
	}

	p := pool.New().WithContext(ctx)
	if limit > 0 {
		p = p.WithMaxGoroutines(limit)
	}

	var failed atomic.Int64
	for i, task := range tasks {
		i, task := i, task
		p.Go(func(ctx context.Context) error {
			err := task(ctx)
			if err != nil {
				failed.Add(1)
				if onError != nil {
					onError(i, err)
				}
			}
			return err
		})
	}
	res.Err = p.Wait()
	res.Failed = int(failed.Load())
	return res
}
