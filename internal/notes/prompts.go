package notes

// narrationPromptTemplate asks the vision model for a spoken script of
// one slide. Japanese, like the lectures themselves.
const narrationPromptTemplate = `このスライド（%dページ目）の内容を元に、発表者向けの詳しい原稿を日本語で作成してください。

要件:
- 聞き手にとって分かりやすい説明になるよう、具体例や補足説明を含める
- スライドに書かれていない背景情報や詳細説明も追加する
- 自然な話し言葉で、実際の発表で使いやすい形式にする
- 2-3分程度で話せる分量（400-600文字程度）にする
- スライドの内容を単純に読み上げるのではなく、聞き手に分かりやすく説明する

形式:
原稿のみを出力してください。「このスライドでは」などの前置きは不要です。`

// narrationFailedText fills the notes of a slide whose narration call
// failed, so one bad slide never aborts the whole deck.
const narrationFailedText = "スライド %d の原稿を生成できませんでした。"
