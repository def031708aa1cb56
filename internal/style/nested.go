package style

const emptyContent = `""`

func resolvePseudo(in Input) *Style {
	nested, ok := asProps(in.Value)
	if !ok {
		in.Warn("nested props must be an object", map[string]any{"prop": in.Prop})
		return nil
	}

	resolved := in.Resolve(nested)
	if in.Prop == "propsOnAfter" || in.Prop == "propsOnBefore" {
		if _, has := resolved.Get("content"); !has {
			withContent := Of("content", emptyContent)
			withContent.Merge(resolved)
			resolved = withContent
		}
	}
	return Of(pseudoSelectors[in.Prop], resolved)
}

func mediaResolver(query string) ComputedResolver {
	return func(in Input) *Style {
		nested, ok := asProps(in.Value)
		if !ok {
			in.Warn("nested props must be an object", map[string]any{"prop": in.Prop})
			return nil
		}
		return Of(query, in.Resolve(nested))
	}
}

// resolveCustomSelectors nests each entry under its key verbatim, in
// lexical key order.
func resolveCustomSelectors(in Input) *Style {
	selectors, ok := asProps(in.Value)
	if !ok {
		in.Warn("customSelectors must map selectors to props", map[string]any{"prop": in.Prop})
		return nil
	}

	out := NewStyle()
	for _, selector := range selectors.Keys() {
		nested, ok := asProps(selectors[selector])
		if !ok {
			in.Warn("selector props must be an object", map[string]any{"selector": selector})
			continue
		}
		out.Set(selector, in.Resolve(nested))
	}
	return out
}
