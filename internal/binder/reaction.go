package binder

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/vk/simscene/internal/config"
	"github.com/vk/simscene/internal/ctxlog"
	"github.com/vk/simscene/internal/model"
	"github.com/vk/simscene/internal/token"
)

// tokenSeparator joins molecule tokens in reactant/product strings.
const tokenSeparator = " + "

// resolveMolecule parses one reactant/product mention and resolves the
// species name against the registry.
func (b *Binder) resolveMolecule(tok string) (model.MoleculeRef, error) {
	name, orient, err := token.ParseMolecule(tok)
	if err != nil {
		return model.MoleculeRef{}, err
	}
	spec, err := b.reg.Species.Lookup(name)
	if err != nil {
		return model.MoleculeRef{}, err
	}
	return model.MoleculeRef{Species: spec, Orientation: orient}, nil
}

// resolveMoleculeList splits a " + "-joined token string and resolves
// every token. The list must be non-empty.
func (b *Binder) resolveMoleculeList(entity, field, joined string) ([]model.MoleculeRef, error) {
	if strings.TrimSpace(joined) == "" {
		return nil, &MalformedFieldError{
			Entity: entity,
			Field:  field,
			Value:  joined,
			Err:    fmt.Errorf("must list at least one molecule"),
		}
	}

	tokens := strings.Split(joined, tokenSeparator)
	refs := make([]model.MoleculeRef, 0, len(tokens))
	for _, tok := range tokens {
		ref, err := b.resolveMolecule(tok)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", entity, err)
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

// bindReactions builds one reaction rule per descriptor. A backward rate
// in the document is carried but not bound: reversibility support is a
// known gap, surfaced as a warning rather than silently miscomputed.
func (b *Binder) bindReactions(ctx context.Context, sc *config.Scenario) error {
	logger := ctxlog.FromContext(ctx)

	for i, def := range sc.Reactions {
		entity := fmt.Sprintf("reaction %d", i+1)
		if def.Name != "" {
			entity = fmt.Sprintf("reaction %q", def.Name)
		}

		rate, err := strconv.ParseFloat(def.FwdRate, 64)
		if err != nil {
			return &MalformedFieldError{Entity: entity, Field: "fwd_rate", Value: def.FwdRate, Err: err}
		}
		if def.BkwdRate != "" {
			logger.Warn("Backward rate is not supported and will be ignored.",
				"reaction", entity, "bkwd_rate", def.BkwdRate)
		}

		reactants, err := b.resolveMoleculeList(entity, "reactants", def.Reactants)
		if err != nil {
			return err
		}
		products, err := b.resolveMoleculeList(entity, "products", def.Products)
		if err != nil {
			return err
		}

		rx := &model.Reaction{
			Name:      def.Name,
			Reactants: reactants,
			Products:  products,
			FwdRate:   rate,
		}
		b.reactions = append(b.reactions, rx)
		if err := b.eng.AddReaction(rx); err != nil {
			return fmt.Errorf("%s: %w", entity, err)
		}
		logger.Debug("Bound reaction.", "entity", entity, "rate", rate)
	}

	logger.Info("Reaction pass complete.", "count", len(b.reactions))
	return nil
}
