package catalog

var fallbackArticles = []Article{
	{
		Title: "5 things I've put on my resume to stand out and get a badass job",
		Links: Links{
			LinkDevTo: "https://dev.to/mpodlasin/5-things-i-ve-put-on-my-resume-to-stand-out-and-get-a-badass-job-2o1n",
		},
		Tags: []string{"career"},
	},
	{
		Title: "Functional Programming in JS: Functor - Monad's little brother",
		Links: Links{
			LinkDevTo: "https://dev.to/mpodlasin/functional-programming-in-js-functor-monad-s-little-brother-3053",
		},
		Tags: []string{"javascript", "functional-programming"},
	},
	{
		Title: "4 Tricks to Learn Programming MUCH Faster",
		Links: Links{
			LinkDevTo:  "https://dev.to/mpodlasin/4-tricks-to-learn-programming-much-faster-2e5d",
			LinkMedium: "https://medium.com/@mpodlasin/4-tricks-to-learn-programming-much-faster-accb6224d164",
		},
		Tags: []string{"learning", "career"},
	},
	{
		Title: "Functional Programming in JS, part II - Immutability (Vanilla JS, Immutable.js and Immer)",
		Links: Links{
			LinkDevTo: "https://dev.to/mpodlasin/functional-programming-in-js-part-ii-immutability-vanilla-js-immutable-js-and-immer-2ccm",
		},
		Tags: []string{"javascript", "functional-programming"},
	},
	{
		Title: "5 (practical) reasons why your next programming language to learn should be Haskell",
		Links: Links{
			LinkDevTo:  "https://dev.to/mpodlasin/5-practical-reasons-why-your-next-programming-language-to-learn-should-be-haskell-gc",
			LinkMedium: "https://medium.com/@mpodlasin/5-practical-reasons-why-your-next-programming-language-to-learn-should-be-haskell-4b02422da6e",
		},
		Tags: []string{"haskell", "functional-programming", "learning"},
	},
	{
		Title: "Functional Programming in JS, part I - Composition (Currying, Lodash and Ramda)",
		Links: Links{
			LinkDevTo:  "https://dev.to/mpodlasin/functional-programming-in-js-part-i-composition-currying-lodash-and-ramda-1ohb",
			LinkMedium: "https://medium.com/@mpodlasin/functional-programming-in-js-part-i-composition-currying-lodash-and-ramda-5d5015f3fdb0",
		},
		Tags: []string{"javascript", "functional-programming"},
	},
	{
		Title: "My thoughts on endless battle of React state management libraries (setState/useState vs Redux vs Mobx)",
		Links: Links{
			LinkDevTo:  "https://dev.to/mpodlasin/my-thoughts-on-endless-battle-of-react-state-management-libraries-setstate-usestate-vs-redux-vs-mobx-2kal",
			LinkMedium: "https://medium.com/@mpodlasin/my-thoughts-on-endless-battle-of-react-state-management-libraries-setstate-usestate-vs-redux-vs-2fd5869aa637",
		},
		Tags: []string{"javascript", "react"},
	},
	{
		Title: "Solving the mystery of Promise *catch* method - and learning more about the *then* on the way",
		Slug:  "promise-catch-method",
		Links: Links{
			LinkDevTo: "https://dev.to/mpodlasin/solving-the-mystery-of-promise-catch-method-and-learning-more-about-the-then-on-the-way-1okl",
		},
		Tags: []string{"javascript", "promises"},
	},
	{
		Title: "An in depth explanation of Promise.all and comparison with Promise.allSettled",
		Links: Links{
			LinkDevTo:  "https://dev.to/mpodlasin/an-in-depth-explanation-of-promise-all-and-comparison-with-promise-allsettled-2olo",
			LinkMedium: "https://medium.com/@mpodlasin/an-in-depth-explanation-of-promise-all-and-comparison-with-promise-allsettled-769032da9d9a",
		},
		Tags: []string{"javascript", "promises"},
	},
	{
		Title: "React.useEffect hook explained in depth on a simple example",
		Links: Links{
			LinkDevTo:  "https://dev.to/mpodlasin/react-useeffect-hook-explained-in-depth-on-a-simple-example-19ec",
			LinkMedium: "https://medium.com/@mpodlasin/react-useeffect-hook-explained-in-depth-on-a-simple-example-ec9f898d32d3",
		},
		Tags: []string{"javascript", "react"},
	},
	{
		Title: "Async/await & Promise interoperability",
		Slug:  "async-await-promise-interoperability",
		Links: Links{
			LinkDevTo:  "https://dev.to/mpodlasin/async-await-promise-interoperability-7oe",
			LinkMedium: "https://medium.com/@mpodlasin/async-await-promise-interoperability-23b8f01ea86d",
		},
		Tags: []string{"javascript", "promises"},
	},
	{
		Title: "3 most common mistakes when using Promises in JavaScript",
		Links: Links{
			LinkDevTo:  "https://dev.to/mpodlasin/3-most-common-mistakes-when-using-promises-in-javascript-oab",
			LinkMedium: "https://medium.com/@mpodlasin/3-most-common-mistakes-in-using-promises-in-javascript-575fc31939b6",
		},
		Tags: []string{"javascript", "promises"},
	},
}

// Default returns a store over the built-in article list.
func Default() *Store {
	return NewStore(fallbackArticles)
}
