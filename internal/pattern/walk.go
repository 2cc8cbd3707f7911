package pattern

// CollectReplacers walks a compiled Node tree and returns every Replacer it
// contains, in the order the matcher's SetFilename should resolve them.
func CollectReplacers(n Node) []*Replacer {
	var out []*Replacer
	collectReplacers(n, &out)
	return out
}

func collectReplacers(n Node, out *[]*Replacer) {
	switch v := n.(type) {
	case *AnySequence:
		for _, item := range v.Items {
			collectReplacers(item, out)
		}
	case *LeadingGlob:
		collectReplacers(v.Trailing, out)
	case *ButterflyGlob:
		collectReplacers(v.Leading, out)
		collectReplacers(v.Trailing, out)
	case *Forwarding:
		collectReplacerSingle(v.Inner, out)
	case *SingleSequence:
		for _, item := range v.Items {
			collectReplacerSingle(item, out)
		}
	}
}

func collectReplacerSingle(sp SinglePattern, out *[]*Replacer) {
	switch v := sp.(type) {
	case *Solo:
		if v.Replacer != nil {
			*out = append(*out, v.Replacer)
		}
	case *Regex:
		if v.Replacer != nil {
			*out = append(*out, v.Replacer)
		}
	}
}
